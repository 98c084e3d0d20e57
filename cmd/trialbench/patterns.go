package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"trialbench/internal/config"
	"trialbench/internal/report"
	"trialbench/internal/users"
)

var askOneFunc = survey.AskOne

const (
	loginByUsername = "username"
	loginByEmail    = "email"
)

type patternsOptions struct {
	interactive bool
	explain     bool
}

var patternsOpts patternsOptions

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Replay the Singleton, Strategy and Adapter user registration demo",
	Long: `Registers sample users against one shared in-memory store under a
configurable password policy, logs them in by username and then by email
through an adapter, and retries a rejected registration under a weaker policy.

Nothing is hashed and nothing is persisted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPatterns(cmd, patternsOpts)
	},
}

func init() {
	rootCmd.AddCommand(patternsCmd)
	patternsCmd.Flags().BoolVar(&patternsOpts.interactive, "interactive", false, "Register and log in your own user after the demo")
	patternsCmd.Flags().BoolVar(&patternsOpts.explain, "explain", false, "Print a short explanation of the patterns")
}

func runPatterns(cmd *cobra.Command, opts patternsOptions) error {
	out := cmd.OutOrStdout()

	policy, err := users.PolicyByName(config.Current().PatternsPolicy)
	if err != nil {
		return err
	}

	// The one store every component of the demo shares.
	store := users.NewStore()

	if opts.explain {
		if err := renderExplanation(out); err != nil {
			return err
		}
	}

	demo := users.NewDemo(out, store, policy)
	demo.Run()

	if opts.interactive {
		return runInteractiveRegistration(out, store, demo.Manager(), policy)
	}
	return nil
}

func renderExplanation(w io.Writer) error {
	style := glamour.WithAutoStyle()
	if config.Current().NoColor {
		style = glamour.WithStandardStyle("notty")
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(users.Explanation)
	if err != nil {
		// Fallback to plain text
		fmt.Fprint(w, users.Explanation)
		return nil
	}
	fmt.Fprint(w, rendered)
	return nil
}

// configured is the policy the demo started with; it is the prompt default.
func runInteractiveRegistration(out io.Writer, store *users.Store, manager *users.Manager, configured users.PasswordPolicy) error {
	report.Banner(out, "Try it yourself")

	var policyName string
	err := askOneFunc(&survey.Select{
		Message: "Password policy:",
		Options: users.PolicyNames,
		Default: policyKey(configured),
	}, &policyName)
	if err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	policy, err := users.PolicyByName(policyName)
	if err != nil {
		return err
	}
	manager.SetPolicy(policy)

	var u users.User
	if err := askOneFunc(&survey.Input{Message: "Username:"}, &u.Username, survey.WithValidator(survey.Required)); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	if err := askOneFunc(&survey.Input{Message: "Email:"}, &u.Email, survey.WithValidator(survey.Required)); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	if err := askOneFunc(&survey.Password{Message: "Password:"}, &u.Password); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}

	switch err := manager.Register(u); {
	case err == nil:
		fmt.Fprintf(out, "Registered %s under policy %s\n", u.Username, policy.Name())
	case errors.Is(err, users.ErrPolicyRejected):
		fmt.Fprintf(out, "Password rejected by policy %s\n", policy.Name())
	case errors.Is(err, users.ErrUserExists):
		fmt.Fprintf(out, "Username or email already registered\n")
	default:
		return err
	}

	var method string
	err = askOneFunc(&survey.Select{
		Message: "Log in by:",
		Options: []string{loginByUsername, loginByEmail},
		Default: loginByUsername,
	}, &method)
	if err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	if method == loginByEmail {
		manager.SetAuthenticator(users.NewEmailAuthAdapter(users.NewEmailLoginSystem(store)))
	} else {
		method = loginByUsername
		manager.SetAuthenticator(users.NewUsernameAuth(store))
	}

	var identifier, password string
	if err := askOneFunc(&survey.Input{Message: strings.ToUpper(method[:1]) + method[1:] + ":"}, &identifier); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	if err := askOneFunc(&survey.Password{Message: "Password:"}, &password); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}

	fmt.Fprintf(out, "Login %s -> %t\n", identifier, manager.Login(identifier, password))
	fmt.Fprintf(out, "Users in the store: %d\n", store.Len())
	return nil
}

// policyKey maps a policy back to the name PolicyByName accepts.
func policyKey(p users.PasswordPolicy) string {
	switch p.(type) {
	case users.WeakPolicy:
		return "weak"
	case users.MediumPolicy:
		return "medium"
	default:
		return "strong"
	}
}

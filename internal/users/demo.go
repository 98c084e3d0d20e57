package users

import (
	"fmt"
	"io"

	"trialbench/internal/report"
)

var registrationColumns = []int{18, 22, 22, 6}

// Sample accounts registered by the demo. bob's password only satisfies the
// medium policy.
var (
	Alice = User{Username: "alice", Email: "alice@site.com", Password: "S3guro!2025"}
	Bob   = User{Username: "bob", Email: "bob@site.com", Password: "bob123"}
	Carl  = User{Username: "carl", Email: "carl@site.com", Password: "F0rte#Key"}
)

// Demo walks a Manager through the scripted registration and login scenario,
// printing each step to out.
type Demo struct {
	out     io.Writer
	store   *Store
	manager *Manager
}

// NewDemo wires a Manager over store with the given initial policy and
// username authentication.
func NewDemo(out io.Writer, store *Store, initial PasswordPolicy) *Demo {
	return &Demo{
		out:     out,
		store:   store,
		manager: NewManager(store, initial, NewUsernameAuth(store)),
	}
}

// Manager returns the manager driven by the demo, in its final state.
func (d *Demo) Manager() *Manager { return d.manager }

// Run prints the six demo steps.
func (d *Demo) Run() {
	d.registerSamples()
	d.listUsers("2) Users in the shared store", true)
	d.loginByUsername()
	d.loginByEmail()
	d.retryWithMediumPolicy()
	d.listUsers("6) Users in the store (final)", false)

	report.Rule(d.out)
	fmt.Fprintln(d.out, "END OF DEMO - patterns applied: Singleton + Adapter + Strategy")
	report.Rule(d.out)
}

func (d *Demo) registerSamples() {
	report.Banner(d.out, "1) Registration with policy "+d.manager.Policy().Name())
	report.Columns(d.out, registrationColumns, "User", "Email", "Password", "OK")
	for _, u := range []User{Alice, Bob, Carl} {
		err := d.manager.Register(u)
		report.Columns(d.out, registrationColumns, u.Username, u.Email, u.Password, report.Check(err == nil))
	}
}

func (d *Demo) listUsers(title string, showPassword bool) {
	report.Banner(d.out, title)
	for _, u := range d.store.List() {
		if showPassword {
			fmt.Fprintf(d.out, "- %s  |  %s  |  (password stored)\n", u.Username, u.Email)
			continue
		}
		fmt.Fprintf(d.out, "- %s  |  %s\n", u.Username, u.Email)
	}
}

func (d *Demo) loginByUsername() {
	report.Banner(d.out, "3) Login by USERNAME (UsernameAuth)")
	fmt.Fprintln(d.out, "alice / correct   ->", d.manager.Login(Alice.Username, Alice.Password))
	fmt.Fprintln(d.out, "alice / wrong     ->", d.manager.Login(Alice.Username, "badPass"))
	fmt.Fprintln(d.out, "carl  / correct   ->", d.manager.Login(Carl.Username, Carl.Password))
}

func (d *Demo) loginByEmail() {
	report.Banner(d.out, "4) Switch to login by EMAIL (Adapter)")
	d.manager.SetAuthenticator(NewEmailAuthAdapter(NewEmailLoginSystem(d.store)))
	fmt.Fprintln(d.out, "alice@site.com / correct ->", d.manager.Login(Alice.Email, Alice.Password))
	fmt.Fprintln(d.out, "bob@site.com   / attempt ->", d.manager.Login(Bob.Email, Bob.Password))
}

func (d *Demo) retryWithMediumPolicy() {
	report.Banner(d.out, "5) Switch policy to MEDIUM and retry registering 'bob'")
	d.manager.SetPolicy(MediumPolicy{})
	fmt.Fprintln(d.out, "Active policy:", d.manager.Policy().Name())
	fmt.Fprintln(d.out, "Register bob with MEDIUM policy ->", d.manager.Register(Bob) == nil)
}

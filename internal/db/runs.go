package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"trialbench/internal/benchmark"
)

// encodeRun flattens a run into the columns of the runs table.
func encodeRun(run benchmark.Run) (createdAt int64, payload string, err error) {
	data, err := json.Marshal(run.Sections)
	if err != nil {
		return 0, "", fmt.Errorf("failed to marshal run %s: %w", run.ID, err)
	}
	return run.Timestamp.UnixNano(), string(data), nil
}

// scanRuns reads id, suite, created_at, payload rows in order.
func scanRuns(rows *sql.Rows) ([]benchmark.Run, error) {
	defer rows.Close()

	runs := []benchmark.Run{}
	for rows.Next() {
		var (
			run       benchmark.Run
			createdAt int64
			payload   string
		)
		if err := rows.Scan(&run.ID, &run.Suite, &createdAt, &payload); err != nil {
			return nil, err
		}
		run.Timestamp = time.Unix(0, createdAt).UTC()
		if err := json.Unmarshal([]byte(payload), &run.Sections); err != nil {
			return nil, fmt.Errorf("failed to unmarshal run %s: %w", run.ID, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func latest(runs []benchmark.Run, err error) (*benchmark.Run, error) {
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[len(runs)-1], nil
}

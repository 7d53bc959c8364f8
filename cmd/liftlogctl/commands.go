package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/2beens/liftlog/internal/config"
	"github.com/2beens/liftlog/internal/db"
	"github.com/2beens/liftlog/internal/overload"
	"github.com/2beens/liftlog/internal/units"
	"github.com/2beens/liftlog/pkg"
)

// buildHashPasswordCmd prints the value for LIFTLOG_ADMIN_PASSWORD_HASH.
// The password is read from the first line of stdin.
func buildHashPasswordCmd() *cobra.Command {
	var cost int
	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Hash the admin password read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			password := strings.TrimRight(line, "\r\n")
			if password == "" {
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				return errors.New("empty password")
			}

			hash, err := pkg.HashPasswordWithCost(password, cost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
	cmd.Flags().IntVar(&cost, "cost", 14, "bcrypt cost")
	return cmd
}

func buildMigrateCmd() *cobra.Command {
	var env, configPath string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(env, configPath)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
				DBHost:     cfg.PostgresHost,
				DBPort:     cfg.PostgresPort,
				DBName:     cfg.PostgresDBName,
				DBUser:     os.Getenv("LIFTLOG_POSTGRES_USER"),
				DBPassword: os.Getenv("LIFTLOG_POSTGRES_PASS"),
			})
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := db.Migrate(ctx, pool); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "schema applied to [%s]\n", cfg.PostgresDBName)
			return err
		},
	}
	cmd.Flags().StringVar(&env, "env", "development", "config environment")
	cmd.Flags().StringVar(&configPath, "config", "./config.toml", "path for the TOML config file")
	return cmd
}

type evaluateFlags struct {
	unitSystem string
	weight     float64
	reps       int
	last       string
	best       string
	age        int
	sessions   int
}

// buildEvaluateCmd runs the overload gate offline, without a database.
func buildEvaluateCmd() *cobra.Command {
	var f evaluateFlags
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a proposed set against the given history",
		Example: "  liftlogctl evaluate --units metric --last 100x10 --weight 110 --reps 10 --age 30\n" +
			"  liftlogctl evaluate --last 225x8 --best 230x8 --weight 235 --reps 8 --sessions 12",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := f.request()
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(overload.Evaluate(req))
		},
	}
	cmd.Flags().StringVar(&f.unitSystem, "units", "imperial", "unit system of all weights [imperial | metric]")
	cmd.Flags().Float64Var(&f.weight, "weight", 0, "proposed weight")
	cmd.Flags().IntVar(&f.reps, "reps", 0, "proposed reps")
	cmd.Flags().StringVar(&f.last, "last", "", "last set as WEIGHTxREPS")
	cmd.Flags().StringVar(&f.best, "best", "", "best set in the window as WEIGHTxREPS")
	cmd.Flags().IntVar(&f.age, "age", 0, "lifter age, 0 when unknown")
	cmd.Flags().IntVar(&f.sessions, "sessions", 0, "training sessions in the recent window")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("reps")
	return cmd
}

func (f evaluateFlags) request() (overload.Request, error) {
	sys, err := units.Parse(f.unitSystem)
	if err != nil {
		return overload.Request{}, err
	}
	if f.weight < 0 || f.reps <= 0 {
		return overload.Request{}, fmt.Errorf("invalid set: %g x %d", f.weight, f.reps)
	}

	req := overload.Request{
		EnteredWeight:      f.weight,
		EnteredReps:        f.reps,
		UnitSystem:         sys,
		RecentSessionCount: f.sessions,
	}
	if f.age > 0 {
		age := f.age
		req.Age = &age
	}
	if req.LastSet, err = parseSet(f.last, sys); err != nil {
		return overload.Request{}, fmt.Errorf("--last: %w", err)
	}
	if req.BestInWindow, err = parseSet(f.best, sys); err != nil {
		return overload.Request{}, fmt.Errorf("--best: %w", err)
	}
	return req, nil
}

// parseSet reads "WEIGHTxREPS" in the given unit system. Empty means no set.
func parseSet(s string, sys units.System) (*overload.HistoricalSet, error) {
	if s == "" {
		return nil, nil
	}
	var weight float64
	var reps int
	if _, err := fmt.Sscanf(strings.ToLower(s), "%gx%d", &weight, &reps); err != nil {
		return nil, fmt.Errorf("parse set %q: %w", s, err)
	}
	if weight < 0 || reps <= 0 {
		return nil, fmt.Errorf("invalid set %q", s)
	}
	return &overload.HistoricalSet{
		WeightKg: units.ToKg(weight, sys),
		Reps:     reps,
	}, nil
}

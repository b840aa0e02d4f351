package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/bankingapplication/bank-ui/internal/domain/model"
	"github.com/bankingapplication/bank-ui/internal/ports"
)

// AdminServiceOptions groups dependencies for AdminService.
type AdminServiceOptions struct {
	Auth     ports.AuthAPI
	Accounts ports.AccountAPI
	Log      *slog.Logger
}

// AdminService aggregates data for the admin console.
type AdminService struct {
	auth     ports.AuthAPI
	accounts ports.AccountAPI
	log      *slog.Logger
}

// NewAdminService constructs a new AdminService.
func NewAdminService(opts AdminServiceOptions) *AdminService {
	return &AdminService{
		auth:     opts.Auth,
		accounts: opts.Accounts,
		log:      opts.Log,
	}
}

func (s *AdminService) logger() *slog.Logger {
	if s.log != nil {
		return s.log
	}
	return slog.Default()
}

// OverviewStats are the headline numbers on the admin dashboard.
type OverviewStats struct {
	TotalUsers     int
	ActiveUsers    int
	TotalAccounts  int
	ActiveAccounts int
	TotalBalance   float64
}

// Overview is the aggregated admin dashboard payload.
type Overview struct {
	Stats    OverviewStats
	Users    []model.UserResponse
	Accounts []model.Account
}

// Overview fetches all users and all accounts concurrently and derives the
// dashboard stats. The user list is required; an account service failure
// degrades to an empty account list so the dashboard still renders.
func (s *AdminService) Overview(ctx context.Context, token string) (Overview, error) {
	var (
		users    []model.UserResponse
		accounts []model.Account
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.auth.ListUsers(gctx, token)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		accounts, err = s.accounts.AllAccounts(gctx, token)
		if err != nil {
			s.logger().Warn("account overview unavailable", "error", err)
			accounts = []model.Account{}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Overview{}, err
	}

	ov := Overview{Users: users, Accounts: accounts}
	ov.Stats.TotalUsers = len(users)
	for _, u := range users {
		if u.Active {
			ov.Stats.ActiveUsers++
		}
	}
	ov.Stats.TotalAccounts = len(accounts)
	for _, a := range accounts {
		if a.Active {
			ov.Stats.ActiveAccounts++
		}
		ov.Stats.TotalBalance += a.Balance
	}
	return ov, nil
}

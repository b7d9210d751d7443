package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/dto"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/repository"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/service"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errPasswordMismatch = errors.New("passwords do not match")
	errPasswordEmpty    = errors.New("password is required")
)

func newCreateAdminCmd(configPath *string) *cobra.Command {
	var req dto.CreateAdminRequest

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin (trainer) account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.Password == "" {
				pwd, err := promptPassword(cmd.OutOrStdout(), int(os.Stdin.Fd()))
				if err != nil {
					return err
				}
				req.Password = pwd
			}

			cfg, logger, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			db, closeDB, err := openDB(cfg, logger)
			if err != nil {
				return err
			}
			defer closeDB()

			users := service.NewUserService(cfg, repository.NewRepository(db), logger)
			admin, err := users.CreateAdmin(cmd.Context(), &req)
			if err != nil {
				return fmt.Errorf("create admin: %w", err)
			}

			logger.Info("admin ready", zap.String("id", admin.ID), zap.String("student_id", admin.StudentID))
			fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", admin.Email, admin.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Email, "email", "", "admin email")
	f.StringVar(&req.Name, "name", "", "admin display name")
	f.StringVar(&req.TrainerName, "trainer-name", "", "trainer name students are linked by")
	f.StringVar(&req.Institution.Name, "institution-name", "", "institution name")
	f.StringVar(&req.Institution.Address, "institution-address", "", "institution address")
	f.StringVar(&req.Phone, "phone", "", "contact phone")
	f.StringVar(&req.Password, "password", "", "password; prompted when omitted")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("trainer-name")

	return cmd
}

// promptPassword reads the password twice from the terminal.
func promptPassword(out io.Writer, fd int) (string, error) {
	fmt.Fprint(out, "Enter password: ")
	pwd, err := readPasswordFunc(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", err
	}
	if len(pwd) == 0 {
		return "", errPasswordEmpty
	}

	fmt.Fprint(out, "Confirm password: ")
	confirm, err := readPasswordFunc(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", err
	}
	if string(confirm) != string(pwd) {
		return "", errPasswordMismatch
	}
	return string(pwd), nil
}

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	userUseCase "github.com/Santosha2001/ecommerce/internal/user/usecase"
)

// RunCreateAdmin registers a new account with the ADMIN role. Outputs the
// account ID and email in either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateAdmin(
	ctx context.Context,
	userUC userUseCase.UseCase,
	logger *slog.Logger,
	writer io.Writer,
	name string,
	email string,
	password string,
	phoneNumber string,
	format string,
) error {
	logger.Info("creating admin account", slog.String("email", email))

	user, err := userUC.RegisterUser(ctx, userUseCase.RegisterUserInput{
		Name:        name,
		Email:       email,
		Password:    password,
		PhoneNumber: phoneNumber,
		Role:        "admin",
	})
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	if format == "json" {
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(map[string]string{
			"id":    user.ID.String(),
			"email": user.Email,
			"role":  string(user.Role),
		}); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
	} else {
		_, _ = fmt.Fprintf(writer, "Admin account created\n")
		_, _ = fmt.Fprintf(writer, "  ID:    %s\n", user.ID.String())
		_, _ = fmt.Fprintf(writer, "  Email: %s\n", user.Email)
	}

	logger.Info("admin account created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("email", user.Email),
	)

	return nil
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	server_config "github.com/Purvi1411/expense-tracker/internal/config"
	"github.com/Purvi1411/expense-tracker/internal/auth"
	"github.com/Purvi1411/expense-tracker/internal/logging"
	"github.com/Purvi1411/expense-tracker/internal/service"
	"github.com/Purvi1411/expense-tracker/internal/storage"
)

// create_user registers an account against the configured storage. The email
// comes from the first argument or a prompt; the password is always prompted.
func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}
	logger := logging.SetupLogging(env.LogLevel)

	email, err := readEmail(os.Args[1:])
	if err != nil {
		logger.WithError(err).Fatal("readEmail")
		return
	}
	password, err := readPassword()
	if err != nil {
		logger.WithError(err).Fatal("readPassword")
		return
	}

	store, err := storage.NewStorage(env)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer store.Close()

	svc := service.NewAuthService(store, auth.NewTokenIssuer(env.JWTSecret, env.TokenTTL))
	session, err := svc.Register(context.Background(), email, password)
	if err != nil {
		logger.WithError(err).Error("AuthService.Register")
		return
	}

	logger.WithFields(logrus.Fields{
		"userID": session.UserID.String(),
		"email":  session.Email,
	}).Info("User created")
}

func readEmail(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	fmt.Fprint(os.Stderr, "Email: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read email: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func readPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("password prompt needs a terminal")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	fmt.Fprint(os.Stderr, "Repeat password: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	if string(first) != string(second) {
		return "", fmt.Errorf("passwords do not match")
	}
	return string(first), nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Hash an API password for API_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	RunE:  runHashPassword,
}

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
}

func runHashPassword(_ *cobra.Command, args []string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), 12)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(hash))
	return nil
}

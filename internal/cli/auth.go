package cli

import (
	"fmt"
	"time"

	"boxful-client/internal/domain"
	"boxful-client/internal/services"

	"github.com/spf13/cobra"
)

var (
	regForm      domain.Registration
	regBirthDate string

	loginCreds domain.Credentials
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a Boxful account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		form := regForm
		if regBirthDate != "" {
			birth, err := time.ParseInLocation(time.DateOnly, regBirthDate, time.Local)
			if err != nil {
				return fmt.Errorf("--birth-date must be YYYY-MM-DD: %w", err)
			}
			form.BirthDate = birth
		}

		return withApp(cmd.Context(), func(a *app) error {
			_, err := a.auth.Register(cmd.Context(), form)
			n := services.RegisterNotice(err)
			if err != nil {
				return fail(n, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		})
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and keep the session locally",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			sess, err := a.auth.Login(cmd.Context(), loginCreds)
			n := services.LoginNotice(err)
			if err != nil {
				return fail(n, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			fmt.Fprintf(cmd.OutOrStdout(), "Usuario: %s (id %s)\n", displayName(sess.User), sess.UserID)
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the local session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			if err := a.auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sesión cerrada")
			return nil
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			sess, err := a.auth.Current(cmd.Context())
			if err != nil {
				return err
			}
			if !sess.Authenticated() {
				fmt.Fprintln(cmd.OutOrStdout(), "No has iniciado sesión")
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (id %s)\n", displayName(sess.User), sess.UserID)
			if sess.User != nil && sess.User.Email != "" {
				fmt.Fprintln(out, sess.User.Email)
			}
			return nil
		})
	},
}

func displayName(u *domain.User) string {
	if u == nil {
		return "desconocido"
	}
	return u.FirstName + " " + u.LastName
}

func init() {
	f := registerCmd.Flags()
	f.StringVar(&regForm.FirstName, "first-name", "", "first name")
	f.StringVar(&regForm.LastName, "last-name", "", "last name")
	f.StringVar(&regForm.Sex, "sex", "", "sex")
	f.StringVar(&regBirthDate, "birth-date", "", "birth date (YYYY-MM-DD)")
	f.StringVar(&regForm.Email, "email", "", "email address")
	f.StringVar(&regForm.Phone, "phone", "", `phone number, e.g. "+503 7123 4567"`)
	f.StringVar(&regForm.Password, "password", "", "password (at least 8 characters)")
	f.StringVar(&regForm.ConfirmPassword, "confirm-password", "", "password confirmation")

	lf := loginCmd.Flags()
	lf.StringVar(&loginCreds.Email, "email", "", "email address")
	lf.StringVar(&loginCreds.Password, "password", "", "password")

	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd)
}

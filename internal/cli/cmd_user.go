package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apperrors "terminally-dating/app/pkg/errors"
	"terminally-dating/app/user/models"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Interactively register a new user",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := mustContainer()
		if err != nil {
			return err
		}

		req := &models.RegisterRequest{
			Username:    prompt("Username: "),
			Email:       prompt("Email: "),
			Location:    prompt("Location: "),
			Bio:         prompt("Bio: "),
			ProfileLink: prompt("Profile link: "),
		}
		if ageText := prompt("Age: "); ageText != "" {
			age, err := strconv.Atoi(ageText)
			if err != nil {
				return apperrors.NewValidationError("AGE_INVALID", "age must be a number")
			}
			req.Age = age
		}
		req.Password = prompt("Password: ")

		user, err := c.UserService.Register(req)
		if err != nil {
			if apperrors.IsKind(err, apperrors.KindConflict) {
				fmt.Println("That username or email is already taken; nothing was saved.")
				return nil
			}
			return err
		}

		fmt.Printf("Added user %s (id=%d)\n", user.Username, user.ID)
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := mustContainer()
		if err != nil {
			return err
		}

		users, err := c.UserService.List(100)
		if err != nil {
			return err
		}
		if len(users) == 0 {
			fmt.Println("(no users)")
			return nil
		}

		for _, u := range users {
			fmt.Printf("%3d | %-20s | %-28s | age=%-3d | %s | %s\n",
				u.ID, u.Username, u.Email, u.Age, u.Location,
				u.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var userFindCmd = &cobra.Command{
	Use:   "find [fragment]",
	Short: "Find users whose username contains a fragment",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := mustContainer()
		if err != nil {
			return err
		}

		fragment := ""
		if len(args) == 1 {
			fragment = args[0]
		} else {
			fragment = prompt("Username contains: ")
		}

		users, err := c.UserService.Search(fragment)
		if err != nil {
			return err
		}
		if len(users) == 0 {
			fmt.Println("(no matches)")
			return nil
		}

		for _, u := range users {
			fmt.Printf("%d | %s | %s\n", u.ID, u.Username, u.Email)
		}
		return nil
	},
}

func init() {
	userCmd.AddCommand(userAddCmd, userListCmd, userFindCmd)
	rootCmd.AddCommand(userCmd)
}

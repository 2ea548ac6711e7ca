package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"corus-backend/internal/client"
)

var menusCmd = &cobra.Command{
	Use:   "menus [slug]",
	Short: "List navigation menus, or show one by slug",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			item, err := api.FetchMenuBySlug(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(item)
		}
		items, err := api.FetchMenus(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(items)
	},
}

var solutionsCmd = &cobra.Command{
	Use:   "solutions [slug]",
	Short: "List solution pages, or show one by slug",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			item, err := api.FetchSolutionBySlug(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(item)
		}
		items, err := api.FetchSolutions(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(items)
	},
}

var industriesCmd = &cobra.Command{
	Use:   "industries [slug]",
	Short: "List industry pages, or show one by slug",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			item, err := api.FetchIndustryBySlug(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(item)
		}
		items, err := api.FetchIndustries(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(items)
	},
}

var blogsCmd = &cobra.Command{
	Use:   "blogs [slug]",
	Short: "List published blog posts, or show one by slug",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			item, err := api.FetchBlogBySlug(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(item)
		}
		items, err := api.FetchBlogs(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(items)
	},
}

var caseStudiesCmd = &cobra.Command{
	Use:   "case-studies [slug]",
	Short: "List published case studies, or show one by slug",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			item, err := api.FetchCaseStudyBySlug(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(item)
		}
		items, err := api.FetchCaseStudies(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(items)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the public site counters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := api.FetchStats(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(data)
	},
}

var slotsCmd = &cobra.Command{
	Use:   "slots <date>",
	Short: "Show open meeting slots for a YYYY-MM-DD date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slots, err := api.FetchAvailableSlots(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(slots)
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Open an admin session and print the bearer token",
	Long: `Log in as a back-office admin. The password is read from
CORUS_ADMIN_PASSWORD or prompted for on the terminal. The printed token can
be exported as CORUS_API_TOKEN for subsequent admin commands.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password := os.Getenv("CORUS_ADMIN_PASSWORD")
		if password == "" {
			fmt.Fprint(os.Stderr, "Password: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return err
			}
			password = strings.TrimRight(line, "\r\n")
		}
		session, err := api.Login(cmd.Context(), args[0], password)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Logged in as %s (%s)\n", session.User.Username, session.User.Role)
		fmt.Println(session.Token)
		return nil
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the admin dashboard summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := api.FetchDashboardSummary(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(summary)
	},
}

var subscribersCmd = &cobra.Command{
	Use:   "subscribers",
	Short: "List newsletter subscribers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt64("page")
		limit, _ := cmd.Flags().GetInt64("limit")
		items, pagination, err := api.ListSubscribers(cmd.Context(), client.ListOptions{Page: page, Limit: limit})
		if err != nil {
			return err
		}
		if pagination != nil {
			fmt.Fprintf(os.Stderr, "page %d/%d, %d total\n", pagination.Page, pagination.Pages, pagination.Total)
		}
		return printJSON(items)
	},
}

func init() {
	subscribersCmd.Flags().Int64("page", 1, "page number")
	subscribersCmd.Flags().Int64("limit", 50, "page size")
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var heroHeaders = []string{"ID", "NAME", "SUPER NAME"}

func heroRow(h Hero) []string {
	return []string{strconv.FormatInt(h.ID, 10), h.Name, h.SuperName}
}

// NewHeroCmd создаёт группу команд для героев.
func NewHeroCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hero",
		Short: "Manage heroes",
	}

	cmd.AddCommand(
		newHeroListCmd(clientFn, outputFn),
		newHeroShowCmd(clientFn, outputFn),
		newHeroCreateCmd(clientFn, outputFn),
	)

	return cmd
}

func newHeroListCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all heroes",
		RunE: func(cmd *cobra.Command, args []string) error {
			heroes, err := clientFn().ListHeroes()
			if err != nil {
				return err
			}

			rows := make([][]string, len(heroes))
			for i, h := range heroes {
				rows[i] = heroRow(h)
			}
			outputFn().Print(heroHeaders, rows, heroes)
			return nil
		},
	}
}

func newHeroShowCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a hero with its powers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			hero, err := clientFn().GetHero(id)
			if err != nil {
				return err
			}

			rows := make([][]string, len(hero.HeroPowers))
			for i, hp := range hero.HeroPowers {
				powerName := ""
				if hp.Power != nil {
					powerName = hp.Power.Name
				}
				rows[i] = []string{strconv.FormatInt(hp.ID, 10), powerName, hp.Strength}
			}

			out := outputFn()
			if out.jsonMode {
				out.JSON(hero)
				return nil
			}
			out.Table(heroHeaders, [][]string{heroRow(*hero)})
			if len(rows) > 0 {
				fmt.Fprintln(out.w)
				out.Table([]string{"HERO POWER", "POWER", "STRENGTH"}, rows)
			}
			return nil
		},
	}
}

func newHeroCreateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var name, superName string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new hero",
		RunE: func(cmd *cobra.Command, args []string) error {
			hero, err := clientFn().CreateHero(name, superName)
			if err != nil {
				return err
			}

			out := outputFn()
			out.Success(fmt.Sprintf("Hero created: %d", hero.ID))
			out.Print(heroHeaders, [][]string{heroRow(*hero)}, hero)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Hero name (required)")
	cmd.Flags().StringVar(&superName, "super-name", "", "Hero alias (required)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("super-name")

	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

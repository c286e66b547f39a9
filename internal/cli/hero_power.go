package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var heroPowerHeaders = []string{"ID", "HERO", "POWER", "STRENGTH"}

func heroPowerRow(hp HeroPower) []string {
	hero := strconv.FormatInt(hp.HeroID, 10)
	if hp.Hero != nil {
		hero = hp.Hero.SuperName
	}
	power := strconv.FormatInt(hp.PowerID, 10)
	if hp.Power != nil {
		power = hp.Power.Name
	}
	return []string{strconv.FormatInt(hp.ID, 10), hero, power, hp.Strength}
}

// NewHeroPowerCmd создаёт группу команд для связей героев со способностями.
func NewHeroPowerCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hero-power",
		Short: "Manage hero powers",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all hero powers",
			RunE: func(cmd *cobra.Command, args []string) error {
				hps, err := clientFn().ListHeroPowers()
				if err != nil {
					return err
				}

				rows := make([][]string, len(hps))
				for i, hp := range hps {
					rows[i] = heroPowerRow(hp)
				}
				outputFn().Print(heroPowerHeaders, rows, hps)
				return nil
			},
		},
		newHeroPowerCreateCmd(clientFn, outputFn),
	)

	return cmd
}

func newHeroPowerCreateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var (
		strength        string
		heroID, powerID int64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Grant a power to a hero",
		RunE: func(cmd *cobra.Command, args []string) error {
			hp, err := clientFn().CreateHeroPower(strength, heroID, powerID)
			if err != nil {
				return err
			}

			out := outputFn()
			out.Success(fmt.Sprintf("Hero power created: %d", hp.ID))
			out.Print(heroPowerHeaders, [][]string{heroPowerRow(*hp)}, hp)
			return nil
		},
	}

	cmd.Flags().StringVar(&strength, "strength", "", "Strength, e.g. Strong, Average, Weak (required)")
	cmd.Flags().Int64Var(&heroID, "hero-id", 0, "Hero ID (required)")
	cmd.Flags().Int64Var(&powerID, "power-id", 0, "Power ID (required)")
	cmd.MarkFlagRequired("strength")
	cmd.MarkFlagRequired("hero-id")
	cmd.MarkFlagRequired("power-id")

	return cmd
}

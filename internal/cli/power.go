package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var powerHeaders = []string{"ID", "NAME", "DESCRIPTION"}

func powerRow(p Power) []string {
	return []string{strconv.FormatInt(p.ID, 10), p.Name, p.Description}
}

// NewPowerCmd создаёт группу команд для способностей.
func NewPowerCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "power",
		Short: "Manage powers",
	}

	cmd.AddCommand(
		newPowerListCmd(clientFn, outputFn),
		newPowerShowCmd(clientFn, outputFn),
		newPowerCreateCmd(clientFn, outputFn),
		newPowerUpdateCmd(clientFn, outputFn),
	)

	return cmd
}

func newPowerListCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all powers",
		RunE: func(cmd *cobra.Command, args []string) error {
			powers, err := clientFn().ListPowers()
			if err != nil {
				return err
			}

			rows := make([][]string, len(powers))
			for i, p := range powers {
				rows[i] = powerRow(p)
			}
			outputFn().Print(powerHeaders, rows, powers)
			return nil
		},
	}
}

func newPowerShowCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a power",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			power, err := clientFn().GetPower(id)
			if err != nil {
				return err
			}
			outputFn().Print(powerHeaders, [][]string{powerRow(*power)}, power)
			return nil
		},
	}
}

func newPowerCreateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new power",
		RunE: func(cmd *cobra.Command, args []string) error {
			power, err := clientFn().CreatePower(name, description)
			if err != nil {
				return err
			}

			out := outputFn()
			out.Success(fmt.Sprintf("Power created: %d", power.ID))
			out.Print(powerHeaders, [][]string{powerRow(*power)}, power)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Power name (required)")
	cmd.Flags().StringVar(&description, "description", "", "Power description, at least 20 characters (required)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("description")

	return cmd
}

func newPowerUpdateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the description of a power",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			power, err := clientFn().UpdatePowerDescription(id, description)
			if err != nil {
				return err
			}

			out := outputFn()
			out.Success(fmt.Sprintf("Power updated: %d", power.ID))
			out.Print(powerHeaders, [][]string{powerRow(*power)}, power)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "New description (required)")
	cmd.MarkFlagRequired("description")

	return cmd
}

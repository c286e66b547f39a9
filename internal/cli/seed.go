package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// seedPowers — способности демонстрационного набора.
var seedPowers = []Power{
	{Name: "super strength", Description: "gives the wielder super-human strengths"},
	{Name: "flight", Description: "gives the wielder the ability to fly through the skies at supersonic speed"},
	{Name: "super human senses", Description: "allows the wielder to use her senses at a super-human level"},
	{Name: "elasticity", Description: "can stretch the human body to extreme lengths"},
}

// seedHeroes — герои демонстрационного набора.
var seedHeroes = []Hero{
	{Name: "Kamala Khan", SuperName: "Ms. Marvel"},
	{Name: "Doreen Green", SuperName: "Squirrel Girl"},
	{Name: "Gwen Stacy", SuperName: "Spider-Gwen"},
	{Name: "Janet Van Dyne", SuperName: "The Wasp"},
	{Name: "Wanda Maximoff", SuperName: "Scarlet Witch"},
	{Name: "Carol Danvers", SuperName: "Captain Marvel"},
	{Name: "Jean Grey", SuperName: "Dark Phoenix"},
	{Name: "Ororo Munroe", SuperName: "Storm"},
	{Name: "Kitty Pryde", SuperName: "Shadowcat"},
	{Name: "Elektra Natchios", SuperName: "Elektra"},
}

var seedStrengths = []string{"Strong", "Weak", "Average"}

// SeedResult — что было создано командой seed.
type SeedResult struct {
	Heroes     []Hero      `json:"heroes"`
	Powers     []Power     `json:"powers"`
	HeroPowers []HeroPower `json:"hero_powers"`
}

// Seed создаёт демонстрационный набор данных через API.
// Каждый герой получает одну способность; распределение детерминировано.
func Seed(client *Client) (*SeedResult, error) {
	res := &SeedResult{}

	for _, p := range seedPowers {
		created, err := client.CreatePower(p.Name, p.Description)
		if err != nil {
			return res, fmt.Errorf("create power %q: %w", p.Name, err)
		}
		res.Powers = append(res.Powers, *created)
	}

	for _, h := range seedHeroes {
		created, err := client.CreateHero(h.Name, h.SuperName)
		if err != nil {
			return res, fmt.Errorf("create hero %q: %w", h.SuperName, err)
		}
		res.Heroes = append(res.Heroes, *created)
	}

	for i, hero := range res.Heroes {
		power := res.Powers[i%len(res.Powers)]
		strength := seedStrengths[i%len(seedStrengths)]

		hp, err := client.CreateHeroPower(strength, hero.ID, power.ID)
		if err != nil {
			return res, fmt.Errorf("grant %q to %q: %w", power.Name, hero.SuperName, err)
		}
		res.HeroPowers = append(res.HeroPowers, *hp)
	}

	return res, nil
}

// NewSeedCmd создаёт команду seed.
func NewSeedCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Fill the API with a sample set of heroes and powers",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := Seed(clientFn())
			if err != nil {
				return err
			}

			out := outputFn()
			out.Success(fmt.Sprintf("Seeded %d powers, %d heroes, %d hero powers",
				len(res.Powers), len(res.Heroes), len(res.HeroPowers)))

			rows := make([][]string, len(res.HeroPowers))
			for i, hp := range res.HeroPowers {
				rows[i] = heroPowerRow(hp)
			}
			out.Print(heroPowerHeaders, rows, res)
			return nil
		},
	}
}

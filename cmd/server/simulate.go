package main

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/vygddrasil/battle-api/internal/engine/combat"
	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
	"github.com/vygddrasil/battle-api/internal/pkg/clock"
	"github.com/vygddrasil/battle-api/internal/repositories/enemies"
)

var (
	simClass   string
	simEnemyID string
	simBattles int
	simVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run auto-battle simulations against a catalog enemy",
	Long:  `Simulate a number of auto-battles for a sample character of the given class and print the aggregate outcome. Useful for tuning enemy stats.`,
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&simClass, "class", string(vygddrasil.ClassWarrior), "character class to simulate")
	simulateCmd.Flags().StringVar(&simEnemyID, "enemy", "enemy_forest_wolf", "enemy ID from the built-in catalog")
	simulateCmd.Flags().IntVar(&simBattles, "battles", 100, "number of battles to simulate")
	simulateCmd.Flags().BoolVar(&simVerbose, "verbose", false, "print the log of the first battle")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	repo := enemies.NewInMemory(enemies.DefaultCatalog())
	enemyOutput, err := repo.Get(cmd.Context(), enemies.GetInput{ID: simEnemyID})
	if err != nil {
		return fmt.Errorf("failed to load enemy: %w", err)
	}
	enemy := enemyOutput.Enemy

	char := sampleCharacter(vygddrasil.Class(simClass))
	stats := combat.TotalStats(char)
	clk := clock.New()

	var victories int
	var totalTurns int64
	for i := 0; i < simBattles; i++ {
		out, err := combat.SimulateAutoBattle(dice.DefaultRoller, clk, &combat.AutoBattleInput{
			PlayerName:       char.Name,
			Player:           stats,
			PlayerAttackType: combat.AttackTypeForClass(char.Class),
			Enemy:            enemy,
		})
		if err != nil {
			return fmt.Errorf("simulation failed: %w", err)
		}

		if simVerbose && i == 0 {
			for _, entry := range out.Log {
				line := entry.Action
				if entry.Damage != nil {
					line = fmt.Sprintf("%s (%d damage)", line, *entry.Damage)
				}
				if entry.IsCritical {
					line += " [critical]"
				}
				fmt.Printf("turn %d: %s\n", entry.Turn, line)
			}
		}

		totalTurns += int64(out.Turns)
		if out.Result == vygddrasil.BattleVictory {
			victories++
		}
	}

	fmt.Printf("%s vs %s over %d battles\n", char.Class, enemy.Name, simBattles)
	fmt.Printf("  victories: %d (%.1f%%)\n", victories, float64(victories)/float64(simBattles)*100)
	fmt.Printf("  defeats:   %d\n", simBattles-victories)
	fmt.Printf("  avg turns: %.1f\n", float64(totalTurns)/float64(simBattles))
	return nil
}

// sampleCharacter builds a level 5 character with a stat spread typical for
// the class
func sampleCharacter(class vygddrasil.Class) *vygddrasil.Character {
	base := vygddrasil.Stats{Str: 8, Agi: 8, Int: 8, HP: 150, MP: 50, Luck: 5}
	switch class {
	case vygddrasil.ClassWarrior:
		base.Str, base.HP = 16, 200
	case vygddrasil.ClassAssassin:
		base.Str, base.Agi, base.Luck = 12, 14, 8
	case vygddrasil.ClassArcher:
		base.Str, base.Agi = 11, 15
	case vygddrasil.ClassBard:
		base.Int, base.Agi, base.Luck = 12, 10, 10
	case vygddrasil.ClassMagician:
		base.Int, base.MP = 18, 120
	}

	return &vygddrasil.Character{
		ID:        "sim",
		Name:      "Simulated " + string(class),
		Class:     class,
		Level:     5,
		BaseStats: base,
	}
}

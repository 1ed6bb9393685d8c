package combat

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
	"github.com/vygddrasil/battle-api/internal/errors"
)

// CalculateRewards resolves the rewards for a finished battle. Anything
// short of victory yields zero rewards regardless of config. A "random"
// stat bonus is resolved to one of the six stats at call time.
func CalculateRewards(
	roller dice.Roller,
	cfg *vygddrasil.RewardConfig,
	isVictory bool,
) (*vygddrasil.Rewards, error) {
	if !isVictory || cfg == nil {
		return &vygddrasil.Rewards{}, nil
	}

	rewards := &vygddrasil.Rewards{
		Exp:  cfg.ExpReward,
		Gold: cfg.GoldReward,
	}

	if cfg.StatBonusType != "" {
		stat := vygddrasil.StatKey(cfg.StatBonusType)
		if cfg.StatBonusType == vygddrasil.StatBonusRandom {
			roll, err := roller.Roll(len(vygddrasil.StatKeys))
			if err != nil {
				return nil, errors.Wrap(err, "failed to roll random stat bonus")
			}
			stat = vygddrasil.StatKeys[roll-1]
		}
		rewards.StatBonus = &vygddrasil.StatBonus{
			Stat:  stat,
			Value: cfg.StatBonusValue,
		}
	}

	if cfg.NFTRewardEnabled {
		rewards.NFT = &vygddrasil.NFTReward{
			Contract: cfg.NFTContract,
			TokenID:  cfg.NFTTokenID,
		}
	}

	return rewards, nil
}

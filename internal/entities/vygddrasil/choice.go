package vygddrasil

// StatCheck gates a battle choice on a player stat against a threshold
type StatCheck struct {
	Stat      StatKey `json:"stat"`
	Threshold int32   `json:"threshold"`
}

// BattleChoice is a narrative option tied to an enemy encounter. The
// declared Outcome drives the legacy one-shot resolution when no stat
// check is configured.
type BattleChoice struct {
	ID          string        `json:"id"`
	Text        string        `json:"text"`
	Outcome     ChoiceOutcome `json:"outcome"`
	StatCheck   *StatCheck    `json:"stat_check,omitempty"`
	SuccessText string        `json:"success_text"`
	FailureText string        `json:"failure_text"`
}

// RewardConfig describes what a victorious battle grants, supplied as
// plain data by the external service layer
type RewardConfig struct {
	ExpReward        int32  `json:"exp_reward"`
	GoldReward       int32  `json:"gold_reward"`
	StatBonusType    string `json:"stat_bonus_type,omitempty"` // stat key or "random"
	StatBonusValue   int32  `json:"stat_bonus_value,omitempty"`
	NFTRewardEnabled bool   `json:"nft_reward_enabled"`
	NFTContract      string `json:"nft_contract,omitempty"`
	NFTTokenID       string `json:"nft_token_id,omitempty"`
}

// StatBonus is a resolved stat bonus attached to battle rewards
type StatBonus struct {
	Stat  StatKey `json:"stat"`
	Value int32   `json:"value"`
}

// NFTReward carries the on-chain reward identifiers verbatim from config
type NFTReward struct {
	Contract string `json:"contract"`
	TokenID  string `json:"token_id"`
}

// Rewards is the resolved outcome of a victorious battle. Produced at most
// once per battle; idempotent application is the caller's responsibility.
type Rewards struct {
	Exp       int32      `json:"exp"`
	Gold      int32      `json:"gold"`
	StatBonus *StatBonus `json:"stat_bonus,omitempty"`
	NFT       *NFTReward `json:"nft,omitempty"`
}

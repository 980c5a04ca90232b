package bot

import "fmt"

// BotIdentity is a named seat filled by a bot when no roster is configured.
type BotIdentity struct {
	Name  string
	Level BotLevel
}

var botIdentities = []BotIdentity{
	{Name: "Ruby", Level: BotLevelSmart},
	{Name: "Jade", Level: BotLevelGreedy},
	{Name: "Amber", Level: BotLevelRandom},
	{Name: "Indigo", Level: BotLevelFirst},
}

// GetBotIdentity returns an identity for a bot by index. Indices past the
// pool get a numbered name.
func GetBotIdentity(index int) BotIdentity {
	if index >= 0 && index < len(botIdentities) {
		return botIdentities[index]
	}
	return BotIdentity{Name: fmt.Sprintf("Bot %d", index+1), Level: BotLevelFirst}
}

// DefaultNames returns the first n pool names.
func DefaultNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = GetBotIdentity(i).Name
	}
	return names
}

// IsBot reports whether name belongs to the default pool.
func IsBot(name string) bool {
	for _, identity := range botIdentities {
		if identity.Name == name {
			return true
		}
	}
	return false
}

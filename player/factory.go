package player

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/game"
)

const (
	StrategyGood  = "good"
	StrategyNaive = "naive"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

func NewStrategy(name string, seed uint64, continueChance float64) (Strategy, error) {
	switch name {
	case StrategyGood:
		return NewGoodPlayer(seed, continueChance), nil
	case StrategyNaive:
		return NewNaivePlayer(seed), nil
	default:
		return nil, consts.ErrorsStrategyInvalid
	}
}

// CreatePlayers seats the human first and fills the other seats with bots.
func CreatePlayers(numberOfPlayers int, humanPlayerName, strategy string, seed uint64, continueChance float64) ([]string, []Bot, error) {
	if numberOfPlayers < consts.MinPlayers || numberOfPlayers > consts.MaxPlayers {
		return nil, nil, consts.ErrorsGamePlayersInvalid
	}
	names := append(make([]string, 0, numberOfPlayers), humanPlayerName)
	bots, err := generateBots(numberOfPlayers-1, strategy, seed, continueChance)
	if err != nil {
		return nil, nil, err
	}
	for _, bot := range bots {
		names = append(names, bot.Name)
	}
	return names, bots, nil
}

func generateBots(amount int, strategy string, seed uint64, continueChance float64) ([]Bot, error) {
	rng := game.NewRand(seed)
	shuffled := append([]string(nil), botNames...)
	rng.Shuffle(len(shuffled), func(i int, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	bots := make([]Bot, 0, amount)
	for i, botName := range shuffled[:amount] {
		botStrategy, err := NewStrategy(strategy, rng.Uint64(), continueChance)
		if err != nil {
			return nil, err
		}
		bots = append(bots, Bot{Seat: i + 1, Name: botName, Strategy: botStrategy})
	}
	return bots, nil
}

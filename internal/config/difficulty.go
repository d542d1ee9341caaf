package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/vancomm/minefield/internal/minefield"
)

type Difficulty struct {
	Name string `json:"name"`
	minefield.Params
}

var Difficulties = []Difficulty{
	{"beginner", minefield.Params{Width: 8, Height: 8, MineCount: 10}},
	{"small", minefield.Params{Width: 10, Height: 10, MineCount: 10}},
	{"intermediate", minefield.Params{Width: 16, Height: 16, MineCount: 40}},
	{"expert", minefield.Params{Width: 30, Height: 16, MineCount: 99}},
}

func LookupDifficulty(name string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("unknown difficulty %q", name)
}

func DefaultDifficulty() (Difficulty, error) {
	name, ok := os.LookupEnv("DEFAULT_DIFFICULTY")
	if !ok {
		name = "expert"
	}
	return LookupDifficulty(name)
}

package app

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/vancomm/minefield/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(
		a.log, a.store, a.ws, a.difficulty, a.limits, createRand(),
	)
	game.Register(a.router)
}

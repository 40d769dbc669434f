// controllers/srv.go
package controllers

import (
	"bookswap/app"
	"bookswap/cart"
	"bookswap/db"
)

type Srv struct {
	Repo  *db.Repo
	Carts *cart.Store
	Cfg   app.Config
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo:  db.NewRepo(a.DB),
		Carts: cart.NewStore(a.RDB),
		Cfg:   a.Config,
	}
}

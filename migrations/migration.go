package main

import (
	"github.com/sankalpa008/lost-and-found/infra"
	"github.com/sankalpa008/lost-and-found/models"
)

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	if err := db.AutoMigrate(&models.User{}, &models.Item{}, &models.Session{}); err != nil {
		panic("Failed to migrate database")
	}
}

package main

import "chirpynosh_backend/internal/app"

func main() {
	app.Run()
}

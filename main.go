package main

import "auth-rest-api/config"

func main() {
	config.RunServer()
}

package main

import "github.com/cleitonmarx/symbiont-ai-gamechat/internal/app"

func main() {
	err := app.NewGameChatApp().Run()
	if err != nil {
		panic(err)
	}
}

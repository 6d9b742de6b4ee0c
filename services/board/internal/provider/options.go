package provider

import "boardcode-go/services/board/internal/boards"

func options() boards.Options {
	return boards.Options{DisableTouch: disableTouch}
}

package entity

// Player labels a symbol for display. It takes no part in the rules.
type Player struct {
	Name string `json:"name"`
	IsX  bool   `json:"is_x"`
}

func NewPlayer(name string, isX bool) Player {
	return Player{Name: name, IsX: isX}
}

func (that Player) Symbol() Symbol {
	if that.IsX {
		return SymbolX
	}
	return SymbolO
}

// DisplayName - the player's name, or the symbol itself when no name was given.
func (that Player) DisplayName() string {
	if that.Name == "" {
		return string(that.Symbol())
	}
	return that.Name
}

package model

// Game is a rechargeable title in the catalog.
type Game struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	ImageURL    string `json:"imageUrl" db:"image_url"`
	Description string `json:"description" db:"description"`
}

// PriceOption is a purchasable package of in-game currency for one game.
type PriceOption struct {
	ID          int     `json:"id" db:"id"`
	GameID      int     `json:"gameId" db:"game_id"`
	Currency    string  `json:"currency" db:"currency"`
	Amount      int     `json:"amount" db:"amount"`
	Price       float64 `json:"price" db:"price"`
	Description *string `json:"description" db:"description"`
}

// CreateGameRequest is the admin payload for adding a game.
type CreateGameRequest struct {
	Name        string `json:"name" validate:"required"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

// UpdateGameRequest carries partial game edits; nil fields are left untouched.
type UpdateGameRequest struct {
	Name        *string `json:"name,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreatePriceOptionRequest is the admin payload for adding a price option.
type CreatePriceOptionRequest struct {
	GameID      int     `json:"gameId" validate:"required,gt=0"`
	Currency    string  `json:"currency" validate:"required"`
	Amount      int     `json:"amount" validate:"required,gt=0"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description *string `json:"description,omitempty"`
}

// UpdatePriceOptionRequest carries partial price-option edits.
type UpdatePriceOptionRequest struct {
	GameID      *int     `json:"gameId,omitempty" validate:"omitempty,gt=0"`
	Currency    *string  `json:"currency,omitempty"`
	Amount      *int     `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Description *string  `json:"description,omitempty"`
}

package domain

// Item is a catalog entry with its stock level.
type Item struct {
	ID          int64   `json:"id" bson:"_id"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price"`
	ImageURL    string  `json:"imageUrl" bson:"image_url"`
	Amount      int64   `json:"amount" bson:"amount"`
}

// ItemPayload carries every mutable item field. It is used for both insert
// and full replace.
type ItemPayload struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
	Amount      int64
}

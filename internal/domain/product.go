package domain

// Product is a catalog entry. Comments, Images and Thumbnail are attached by
// the service layer and omitted from JSON when the product has none.
type Product struct {
	ID          string    `json:"id"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Comments    []Comment `json:"comments,omitempty"`
	Images      []Image   `json:"images,omitempty"`
	Thumbnail   *Image    `json:"thumbnail,omitempty"`
}

// Comment is a customer comment on a product. Comments are read-only here.
type Comment struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Body      string `json:"body"`
	ProductID string `json:"productId"`
}

// Image is a product picture. Main marks the preferred thumbnail.
type Image struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	ProductID string `json:"productId"`
	Main      bool   `json:"main"`
}

// NewImage is an image as supplied by a client, before it has an ID.
type NewImage struct {
	URL  string `json:"url"`
	Main bool   `json:"main"`
}

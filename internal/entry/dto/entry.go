package dto

// CategorizeRequest is the body of the public categorize-entry endpoint
type CategorizeRequest struct {
	Content string `json:"content"`
}

// CategorizeResponse mirrors the categorization output contract
type CategorizeResponse struct {
	CategoryName *string `json:"categoryName"`
	Reasoning    string  `json:"reasoning"`
}

// CreateEntryRequest is the body for logging a new thought
type CreateEntryRequest struct {
	Content string `json:"content"`
}

// CategoryRequest is the body for creating or updating a category manually
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

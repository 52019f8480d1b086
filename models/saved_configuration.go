package models

import "time"

// SavedConfiguration is a named configurator snapshot a user can load again
type SavedConfiguration struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Category  ProductCategory `json:"category"`
	Config    ConfigState     `json:"config"`
	Price     float64         `json:"price"`
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// SaveConfigurationRequest represents the request body for saving a configuration
// Example: {"userId": "u1", "category": "gazebos", "name": "Garden gazebo", "config": {"size": "large"}}
type SaveConfigurationRequest struct {
	UserID   string          `json:"userId"`
	Category ProductCategory `json:"category"`
	Name     string          `json:"name"`
	Config   ConfigState     `json:"config"`
}

// SavedConfigurationListResponse represents the response for listing saved configurations
type SavedConfigurationListResponse struct {
	Configurations []SavedConfiguration `json:"configurations"`
}

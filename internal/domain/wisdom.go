package domain

// WisdomRequest asks for a short piece of companion wisdom tied to a pet
// interaction.
type WisdomRequest struct {
	PetType         string `json:"pet_type" binding:"required" example:"elephant"`
	InteractionType string `json:"interaction_type" binding:"required" example:"feeding"`
	PetName         string `json:"pet_name" binding:"required" example:"Bodhi"`
}

// WisdomResponse carries the generated wisdom text.
type WisdomResponse struct {
	Wisdom string `json:"wisdom" example:"Patience, like water, wears down the hardest stone."`
}

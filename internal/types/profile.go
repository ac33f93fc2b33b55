package types

// CreateProfileRequest is the body of POST /api/profile
type CreateProfileRequest struct {
	UserID              string   `json:"userId" binding:"required,max=64"`
	Age                 *int     `json:"age" binding:"omitempty,min=0,max=150"`
	Gender              *string  `json:"gender" binding:"omitempty,max=32"`
	Height              *float64 `json:"height" binding:"omitempty,min=0"`
	Weight              *float64 `json:"weight" binding:"omitempty,min=0"`
	ActivityLevel       *string  `json:"activityLevel" binding:"omitempty,max=64"`
	FitnessGoals        []string `json:"fitnessGoals"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	Allergies           *string  `json:"allergies"`
}

// UpdateProfileRequest is a partial profile update. Only fields present in the
// body are applied; present-but-empty values clear the field.
type UpdateProfileRequest struct {
	Age                 Optional[int]      `json:"age"`
	Gender              Optional[string]   `json:"gender"`
	Height              Optional[float64]  `json:"height"`
	Weight              Optional[float64]  `json:"weight"`
	ActivityLevel       Optional[string]   `json:"activityLevel"`
	FitnessGoals        Optional[[]string] `json:"fitnessGoals"`
	DietaryRestrictions Optional[[]string] `json:"dietaryRestrictions"`
	Allergies           Optional[string]   `json:"allergies"`
}

// UserProfileSnapshot is the profile context a client may attach to a tips request
type UserProfileSnapshot struct {
	Age                 *int     `json:"age,omitempty"`
	Gender              string   `json:"gender,omitempty"`
	Height              *float64 `json:"height,omitempty"`
	Weight              *float64 `json:"weight,omitempty"`
	ActivityLevel       string   `json:"activityLevel,omitempty"`
	FitnessGoals        []string `json:"fitnessGoals,omitempty"`
	DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`
	Allergies           string   `json:"allergies,omitempty"`
}

package domain

var (
	MessageSuccessGetCuisines   = "success get cuisines"
	MessageSuccessAddCuisine    = "cuisine added successfully"
	MessageSuccessUpdateCuisine = "cuisine updated successfully"
	MessageSuccessDeleteCuisine = "cuisine deleted successfully"

	MessageFailedGetCuisines   = "failed to get cuisines"
	MessageFailedAddCuisine    = "failed to add cuisine"
	MessageFailedUpdateCuisine = "failed to update cuisine"
	MessageFailedDeleteCuisine = "failed to delete cuisine"
)

type (
	AddCuisineRequest struct {
		Name string `json:"name" validate:"required"`
	}

	UpdateCuisineRequest struct {
		Name string `json:"name" validate:"required"`
	}

	CuisineResponse struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
)

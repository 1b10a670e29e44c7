package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse acknowledges a mutation that returns no entity.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Recipe moderation ---

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// --- Account administration ---

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=standard admin"`
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6"`
}

// --- Blogs ---

// blogFormRequest mirrors the multipart form the editorial client submits.
// Tags is the serialized tag list (a JSON array string); the picture file
// travels separately in the multipart body.
type blogFormRequest struct {
	Title   string `form:"title"   validate:"required"`
	Content string `form:"content" validate:"required"`
	Tags    string `form:"tags"`
}

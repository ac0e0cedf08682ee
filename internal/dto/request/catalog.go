package request

type ListPlansRequest struct {
	Variant string `json:"variant" validate:"omitempty,oneof=guardian travel"`
	Tier    string `json:"tier" validate:"omitempty,oneof=basic plus pro standard premium luxury"`
}

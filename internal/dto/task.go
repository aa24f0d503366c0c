package dto

// TaskCreateRequest is the payload for creating a task. Only text is
// mandatory; everything else falls back to the board defaults.
type TaskCreateRequest struct {
	Text     string   `json:"text" binding:"required"`
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
	Priority *string  `json:"priority"`
	Color    *string  `json:"color"`
	Date     *string  `json:"date"`
}

// TaskUpdateRequest is a partial update. Pointer fields distinguish a
// supplied value from an absent one; JSON null decodes to nil and is
// therefore treated as absent, so updates can never clear a field.
type TaskUpdateRequest struct {
	Text      *string  `json:"text"`
	X         *float64 `json:"x"`
	Y         *float64 `json:"y"`
	Width     *float64 `json:"width"`
	Height    *float64 `json:"height"`
	Priority  *string  `json:"priority"`
	Color     *string  `json:"color"`
	Date      *string  `json:"date"`
	Completed *bool    `json:"completed"`
}

// Fields returns the column/value pairs actually present in the request,
// keyed by column name.
func (r TaskUpdateRequest) Fields() map[string]any {
	fields := make(map[string]any)

	if r.Text != nil {
		fields["text"] = *r.Text
	}
	if r.X != nil {
		fields["x"] = *r.X
	}
	if r.Y != nil {
		fields["y"] = *r.Y
	}
	if r.Width != nil {
		fields["width"] = *r.Width
	}
	if r.Height != nil {
		fields["height"] = *r.Height
	}
	if r.Priority != nil {
		fields["priority"] = *r.Priority
	}
	if r.Color != nil {
		fields["color"] = *r.Color
	}
	if r.Date != nil {
		fields["date"] = *r.Date
	}
	if r.Completed != nil {
		fields["completed"] = *r.Completed
	}

	return fields
}

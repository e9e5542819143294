package models

// Resource defines a shared academic resource (notes, papers, slides)
type Resource struct {
	ID          string             `json:"id"`                    // Unique identifier (canonical after normalization)
	Title       string             `json:"title"`                 // Resource title
	Subject     string             `json:"subject"`               // Subject code or name, e.g. "CS201"
	Branch      string             `json:"branch"`                // Academic branch, e.g. "CSE"
	Semester    string             `json:"semester"`              // Semester as the backend sends it (string)
	Description string             `json:"description"`           // Free-text description
	FileURL     string             `json:"fileUrl"`               // Download URL for the uploaded file
	FileName    string             `json:"fileName"`              // Original file name
	UploadedBy  Author             `json:"uploadedBy"`            // Uploader (user ref or raw name)
	UploadedAt  string             `json:"uploadedAt"`            // ISO timestamp, passed through unchanged
	Status      VerificationStatus `json:"status"`                // pending | verified | rejected
	Verified    bool               `json:"verified"`              // True only when Status is "verified"
	Upvotes     int                `json:"upvotes"`               // Server-side counter
	Downloads   int                `json:"downloads"`             // Server-side counter
}

// PendingVerification reports whether the resource still needs a faculty
// decision. A record that claims verified while still pending is a backend
// inconsistency and is excluded.
func (r Resource) PendingVerification() bool {
	return r.Status == StatusPending && !r.Verified
}

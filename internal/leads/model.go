package leads

// Lead represents one quote-request submission from the website form.
type Lead struct {
	ID      string `dynamodbav:"id" json:"id"`
	Name    string `dynamodbav:"name" json:"name"`
	Email   string `dynamodbav:"email" json:"email"`
	Phone   string `dynamodbav:"phone" json:"phone"`
	Address string `dynamodbav:"address" json:"address"`
	JobType string `dynamodbav:"jobType" json:"jobType"`
	Notes   string `dynamodbav:"notes" json:"notes"`

	// FilePath is the legacy single-path field older clients submit in the
	// JSON body instead of uploading files.
	FilePath string `dynamodbav:"filePath,omitempty" json:"filePath,omitempty"`

	// Attachments and FilePaths correspond 1:1 and keep upload order.
	Attachments []Attachment `dynamodbav:"attachments,omitempty" json:"attachments,omitempty"`
	FilePaths   []string     `dynamodbav:"filePaths,omitempty" json:"filePaths,omitempty"`

	// CreatedAt is assigned by the repository at write time (RFC 3339).
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// Attachment is one uploaded photo belonging to a Lead. The stored object
// lives at Path; URL is a time-limited signed read link.
type Attachment struct {
	Name        string `dynamodbav:"name" json:"name"`
	Path        string `dynamodbav:"path" json:"path"`
	URL         string `dynamodbav:"url" json:"url"`
	ContentType string `dynamodbav:"contentType" json:"contentType"`
	Size        int64  `dynamodbav:"size" json:"size"`
}

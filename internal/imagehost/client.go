// Package imagehost uploads player photos to the Cloudinary unsigned upload
// endpoint and returns the resulting public URL.
package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// ErrNotConfigured is returned when the cloud name or upload preset is
// missing from the configuration. Uploads are a hard failure in that case,
// never a silent skip.
var ErrNotConfigured = errors.New("image host is not configured")

const uploadFolder = "baba-elite"

// Client is an HTTP client for the Cloudinary upload API.
type Client struct {
	httpClient   *http.Client
	BaseURL      string
	cloudName    string
	uploadPreset string
}

var _ Uploader = (*Client)(nil)

// NewClient creates a new upload client. cloudName and uploadPreset may be
// empty; Upload will then fail with ErrNotConfigured.
func NewClient(cloudName, uploadPreset string) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		BaseURL:      "https://api.cloudinary.com",
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
	}
}

// Upload sends the file as a multipart unsigned upload and returns the
// secure_url from the provider's response. Provider failures are surfaced
// with the response body verbatim.
func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	if c.cloudName == "" || c.uploadPreset == "" {
		return "", ErrNotConfigured
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to copy file into form: %w", err)
	}
	if err := form.WriteField("upload_preset", c.uploadPreset); err != nil {
		return "", fmt.Errorf("failed to write upload preset: %w", err)
	}
	if err := form.WriteField("folder", uploadFolder); err != nil {
		return "", fmt.Errorf("failed to write folder: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize form: %w", err)
	}

	url := fmt.Sprintf("%s/v1_1/%s/image/upload", c.BaseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	log.Debug("Uploading image", "url", url, "filename", filename)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("image upload failed: %s", string(respBody))
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload response did not contain a secure_url")
	}

	log.Info("Image uploaded", "url", result.SecureURL)
	return result.SecureURL, nil
}

// Package upload is a small client for the asset proxy's multipart upload
// endpoint. Admin tooling uses it to push vehicle photos and posters.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// File is one upload payload. Name is the original filename; it becomes part
// of the object key on the server side.
type File struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// Result pairs a file name with the outcome of its upload.
type Result struct {
	Name string
	URL  string
	Err  error
}

// UploadError reports which file failed and why.
type UploadError struct {
	Name string
	Err  error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s: %v", e.Name, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// Client uploads files to an asset proxy endpoint.
type Client struct {
	// Endpoint is the proxy's upload URL, e.g. "https://assets.example.com/".
	Endpoint string
	// HTTPClient defaults to http.DefaultClient when nil.
	HTTPClient *http.Client
}

type uploadResponse struct {
	FileURL string `json:"fileUrl"`
	Error   string `json:"error"`
}

// Upload sends a single file and returns its public fileUrl. typeHint routes
// the object: "poster" lands in the posters folder, anything else in
// products. One attempt, no retry.
func (c *Client) Upload(ctx context.Context, f File, typeHint string) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", f.Name)
	if err != nil {
		return "", &UploadError{Name: f.Name, Err: err}
	}
	if _, err := io.Copy(part, f.Body); err != nil {
		return "", &UploadError{Name: f.Name, Err: err}
	}
	if typeHint != "" {
		if err := mw.WriteField("type", typeHint); err != nil {
			return "", &UploadError{Name: f.Name, Err: err}
		}
	}
	if err := mw.Close(); err != nil {
		return "", &UploadError{Name: f.Name, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, &buf)
	if err != nil {
		return "", &UploadError{Name: f.Name, Err: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", &UploadError{Name: f.Name, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &UploadError{Name: f.Name, Err: err}
	}

	var parsed uploadResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &UploadError{Name: f.Name, Err: fmt.Errorf("malformed response (status %d): %w", resp.StatusCode, err)}
	}

	if resp.StatusCode != http.StatusOK {
		msg := parsed.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return "", &UploadError{Name: f.Name, Err: fmt.Errorf("status %d: %s", resp.StatusCode, msg)}
	}

	if parsed.FileURL == "" {
		return "", &UploadError{Name: f.Name, Err: fmt.Errorf("response missing fileUrl")}
	}

	return parsed.FileURL, nil
}

// UploadAll uploads files one at a time, in order, and returns one Result per
// file. Failures do not stop later uploads and earlier successes are not
// rolled back; the caller decides what a partial batch means.
func (c *Client) UploadAll(ctx context.Context, files []File, typeHint string) []Result {
	results := make([]Result, 0, len(files))
	for _, f := range files {
		url, err := c.Upload(ctx, f, typeHint)
		results = append(results, Result{Name: f.Name, URL: url, Err: err})
	}
	return results
}

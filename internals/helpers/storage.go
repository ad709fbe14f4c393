package helper

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/google/uuid"

	"artsfest_backend/internals/configs"
)

// UploadToSupabase menaruh objek ke bucket storage Supabase via REST.
func UploadToSupabase(bucket, filename, contentType string, data *bytes.Buffer) error {
	if configs.SupabaseProjectURL == "" || configs.SupabaseServiceKey == "" {
		return fmt.Errorf("SUPABASE_PROJECT_URL atau SUPABASE_SERVICE_KEY belum diset")
	}

	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", configs.SupabaseProjectURL, bucket, filename)

	req, err := http.NewRequest(http.MethodPut, uploadURL, data)
	if err != nil {
		return fmt.Errorf("gagal membuat request upload: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+configs.SupabaseServiceKey)
	req.Header.Set("Content-Type", contentType)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("gagal mengirim request upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload gagal status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// PublicURL mengembalikan URL publik stabil untuk objek yang sudah di-upload.
func PublicURL(bucket, filename string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		configs.SupabaseProjectURL, bucket, url.PathEscape(filename))
}

func DeleteFromSupabase(bucket, path string) error {
	deleteURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", configs.SupabaseProjectURL, bucket, path)

	req, err := http.NewRequest(http.MethodDelete, deleteURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+configs.SupabaseServiceKey)

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete gagal status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilenameRe.ReplaceAllString(filename, "_")
}

// GenerateUniqueFilename: <folder>/<yyyymmdd>-<uuid>-<nama asli sanitized>
func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}

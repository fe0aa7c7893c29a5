// file: internals/helpers/supabase_storage.go
package helper

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UploadImageToSupabase sube una imagen al bucket público "image" de Supabase
// Storage y devuelve la URL pública. Se usa para las fotos de perfil de los
// entrenadores. La imagen se convierte a WebP antes de subirla.
func UploadImageToSupabase(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("no se pudo abrir el archivo de imagen: %w", err)
	}
	defer src.Close()

	raw := new(bytes.Buffer)
	if _, err := io.Copy(raw, src); err != nil {
		return "", fmt.Errorf("no se pudo leer el archivo de imagen: %w", err)
	}

	webpData, err := ConvertToWebP(raw.Bytes(), fileHeader.Filename)
	if err != nil {
		return "", fmt.Errorf("no se pudo convertir la imagen: %w", err)
	}

	filename := GenerateUniqueFilename(folder, fileHeader.Filename)
	filename = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".webp"

	if err := uploadToSupabase("image", filename, "image/webp", bytes.NewBuffer(webpData)); err != nil {
		return "", fmt.Errorf("falló la subida de la imagen: %w", err)
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/image/%s",
		os.Getenv("SUPABASE_PROJECT_URL"),
		url.PathEscape(filename),
	)
	return publicURL, nil
}

func sanitizeFilename(filename string) string {
	// solo letras, números, punto, guión y guión bajo
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}

func uploadToSupabase(bucket, filename, contentType string, data *bytes.Buffer) error {
	supabaseURL := os.Getenv("SUPABASE_PROJECT_URL")
	supabaseKey := os.Getenv("SUPABASE_SERVICE_ROLE_KEY")
	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("SUPABASE_PROJECT_URL o SUPABASE_SERVICE_ROLE_KEY no configurados")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", supabaseURL, bucket, url.PathEscape(filename))
	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(data.Bytes()))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+supabaseKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("x-upsert", "true")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("supabase storage respondió %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

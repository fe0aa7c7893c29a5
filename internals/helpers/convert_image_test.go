package helper

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestConvertToWebP(t *testing.T) {
	out, err := ConvertToWebP(pngBytes(t, 20, 20), "foto.png")
	if err != nil {
		t.Fatalf("ConvertToWebP: %v", err)
	}
	if len(out) < 12 || string(out[0:4]) != "RIFF" || string(out[8:12]) != "WEBP" {
		t.Fatal("la salida no es un WebP válido")
	}
}

func TestConvertToWebPRechazaNoImagen(t *testing.T) {
	if _, err := ConvertToWebP([]byte("esto no es una imagen"), "nota.txt"); err == nil {
		t.Fatal("un archivo que no es imagen debió fallar")
	}
	if _, err := ConvertToWebP(nil, "vacio.png"); err == nil {
		t.Fatal("un archivo vacío debió fallar")
	}
}

func TestGenerateUniqueFilenameSanitiza(t *testing.T) {
	name := GenerateUniqueFilename("entrenadores", "mi foto rara!!.png")
	if name == "" {
		t.Fatal("nombre vacío")
	}
	for _, c := range []string{" ", "!"} {
		if bytes.Contains([]byte(name), []byte(c)) {
			t.Fatalf("el nombre generado conserva caracteres inválidos: %q", name)
		}
	}
}

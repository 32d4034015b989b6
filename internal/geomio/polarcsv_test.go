package geomio

import (
	"math"
	"strings"
	"testing"
)

func TestReadPolarCSVBasic(t *testing.T) {
	src := strings.NewReader("alpha,cl,cd,cm\n" +
		"-5,-0.4,0.02,0.01\n" +
		"0,0.1,0.015,0.0\n" +
		"5,0.6,0.02,-0.01\n")

	alpha, cl, cd, cm, err := ReadPolarCSV(src)
	if err != nil {
		t.Fatalf("ReadPolarCSV: %v", err)
	}
	if len(alpha) != 3 || len(cl) != 3 || len(cd) != 3 || len(cm) != 3 {
		t.Fatalf("unexpected lengths: %d %d %d %d", len(alpha), len(cl), len(cd), len(cm))
	}
	if math.Abs(alpha[1]) > 1e-12 {
		t.Errorf("expected alpha[1]=0, got %v", alpha[1])
	}
	want := 5 * math.Pi / 180
	if math.Abs(alpha[2]-want) > 1e-9 {
		t.Errorf("expected alpha[2]=%v rad, got %v", want, alpha[2])
	}
	if cl[2] != 0.6 {
		t.Errorf("expected cl[2]=0.6, got %v", cl[2])
	}
}

func TestReadPolarCSVNoHeader(t *testing.T) {
	src := strings.NewReader("-5,-0.4,0.02,0.01\n0,0.1,0.015,0.0\n")
	alpha, _, _, _, err := ReadPolarCSV(src)
	if err != nil {
		t.Fatalf("ReadPolarCSV: %v", err)
	}
	if len(alpha) != 2 {
		t.Fatalf("expected 2 rows without header, got %d", len(alpha))
	}
}

func TestReadPolarCSVEmpty(t *testing.T) {
	src := strings.NewReader("alpha,cl,cd,cm\n")
	if _, _, _, _, err := ReadPolarCSV(src); err == nil {
		t.Fatal("expected error for header-only file")
	}
}

func TestReadPolarMatrixCSVBasic(t *testing.T) {
	src := strings.NewReader(
		"alpha\\delta,-10,0,10\n" +
			"-5:cl,-0.3,-0.4,-0.5\n" +
			"0:cl,0.1,0.0,-0.1\n" +
			"-5:cd,0.02,0.02,0.02\n" +
			"0:cd,0.015,0.015,0.015\n" +
			"-5:cm,0.01,0.0,-0.01\n" +
			"0:cm,0.0,0.0,0.0\n")

	alpha, delta, cl, cd, cm, err := ReadPolarMatrixCSV(src)
	if err != nil {
		t.Fatalf("ReadPolarMatrixCSV: %v", err)
	}
	if len(alpha) != 2 {
		t.Fatalf("expected 2 alpha rows, got %d", len(alpha))
	}
	if len(delta) != 3 {
		t.Fatalf("expected 3 delta columns, got %d", len(delta))
	}
	if len(cl) != 2 || len(cl[0]) != 3 {
		t.Fatalf("unexpected cl grid shape: %v", cl)
	}
	if len(cd) != 2 || len(cm) != 2 {
		t.Fatalf("expected cd/cm grids populated, got cd=%v cm=%v", cd, cm)
	}
}

func TestReadPolarMatrixCSVBadLabel(t *testing.T) {
	src := strings.NewReader("alpha\\delta,-10,0,10\nbadlabel,0.1,0.2,0.3\n")
	if _, _, _, _, _, err := ReadPolarMatrixCSV(src); err == nil {
		t.Fatal("expected error for malformed row label")
	}
}

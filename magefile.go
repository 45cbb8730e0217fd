//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "imgtrans"
	mainPath   = "./cmd/imgtrans"
)

// Default target to run when none is specified
var Default = Build

// Build compiles the imgtrans binary without Tesseract support
func Build() error {
	fmt.Println("Building", binaryName)
	return sh.RunV("go", "build", "-o", binaryName, mainPath)
}

// BuildTesseract compiles imgtrans with the local Tesseract OCR engine.
// Requires the tesseract and leptonica development headers.
func BuildTesseract() error {
	fmt.Println("Building", binaryName, "with Tesseract")
	return sh.RunV("go", "build", "-tags", "tesseract", "-o", binaryName, mainPath)
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install puts the binary into ~/go/bin
func Install() error {
	mg.Deps(Build)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	target := filepath.Join(home, "go", "bin", binaryName)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	return sh.Copy(target, binaryName)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binaryName)
}

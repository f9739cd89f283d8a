package handlers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gowallet/internal/services/company"
	"gowallet/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// UploadDir holds company logo files; gated by the extension allow-list.
const UploadDir = "static/uploads"

var allowedLogoExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

type CompanyHandler struct {
	companyService company.Service
}

func NewCompanyHandler(companyService company.Service) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// CreateCompany registers a payment recipient. Accepts multipart form
// data so a logo can be uploaded alongside the fields.
func (h *CompanyHandler) CreateCompany(c *fiber.Ctx) error {
	input := company.CreateInput{
		Name:          c.FormValue("name"),
		Address:       c.FormValue("address"),
		AccountNumber: c.FormValue("account_number"),
		Comments:      c.FormValue("comments"),
	}

	if logoFile, err := c.FormFile("logo"); err == nil {
		logoPath, err := saveLogo(c, logoFile.Filename)
		if err != nil {
			return response.BadRequest(c, err.Error())
		}
		input.Logo = logoPath
	}

	created, err := h.companyService.Create(input)
	if err != nil {
		switch {
		case errors.Is(err, company.ErrMissingFields):
			return response.BadRequest(c, "Name and account number are required")
		case errors.Is(err, company.ErrAccountNumberTaken):
			return response.BadRequest(c, "A company with this account number already exists")
		default:
			return response.ServerError(c, "Failed to add company")
		}
	}

	return response.Created(c, "Company successfully added", created)
}

// UpdateCompany edits company fields.
func (h *CompanyHandler) UpdateCompany(c *fiber.Ctx) error {
	companyID, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid company ID")
	}

	var input company.UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	updated, err := h.companyService.Update(uint(companyID), input)
	if err != nil {
		switch {
		case errors.Is(err, company.ErrNotFound):
			return response.NotFound(c, "Company not found")
		case errors.Is(err, company.ErrAccountNumberTaken):
			return response.BadRequest(c, "A company with this account number already exists")
		default:
			return response.ServerError(c, "Failed to update company")
		}
	}

	return response.Success(c, "Company data updated", updated)
}

// DeleteCompany removes a company from the directory.
func (h *CompanyHandler) DeleteCompany(c *fiber.Ctx) error {
	companyID, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid company ID")
	}

	if err := h.companyService.Delete(uint(companyID)); err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return response.NotFound(c, "Company not found")
		}
		return response.ServerError(c, "Failed to delete company")
	}

	return response.Success(c, "Company successfully deleted", nil)
}

// ListCompanies returns the full directory for the management home view.
func (h *CompanyHandler) ListCompanies(c *fiber.Ctx) error {
	companies, err := h.companyService.List()
	if err != nil {
		return response.ServerError(c, "Failed to list companies")
	}
	return c.JSON(fiber.Map{"companies": companies})
}

// GetCompanyByAccountNumber is the public lookup the mobile client
// performs after scanning a QR code.
func (h *CompanyHandler) GetCompanyByAccountNumber(c *fiber.Ctx) error {
	found, err := h.companyService.GetByAccountNumber(c.Params("account_number"))
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return response.NotFound(c, "Company not found")
		}
		return response.ServerError(c, "Failed to fetch company")
	}

	return c.JSON(fiber.Map{
		"name": found.Name,
		"logo": found.Logo,
	})
}

// DownloadQR streams a company's QR code artifact.
func (h *CompanyHandler) DownloadQR(c *fiber.Ctx) error {
	companyID, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid company ID")
	}

	found, err := h.companyService.GetByID(uint(companyID))
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return response.NotFound(c, "Company not found")
		}
		return response.ServerError(c, "Failed to fetch company")
	}
	if found.QRCode == "" {
		return response.NotFound(c, "QR code not found")
	}

	return c.Download(found.QRCode)
}

func saveLogo(c *fiber.Ctx, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedLogoExtensions[ext] {
		return "", errors.New("logo file type not allowed")
	}

	if err := os.MkdirAll(UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	// filepath.Base strips any path components smuggled into the name.
	dest := filepath.Join(UploadDir, filepath.Base(filename))
	logoFile, err := c.FormFile("logo")
	if err != nil {
		return "", err
	}
	if err := c.SaveFile(logoFile, dest); err != nil {
		return "", fmt.Errorf("failed to save logo: %w", err)
	}
	return dest, nil
}

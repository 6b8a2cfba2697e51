package service

import "pdf-tools-server/internal/domain"

// Vendor payload defaults shared across operations.
const (
	defaultEncryptionAlgorithm = "AES_128bit"
	defaultPrintQuality        = "LowResolution"
	defaultPaperSize           = "Letter"
)

// operationRegistry drives the generic proxy. Adding a PDF tool means adding
// an entry here, not a handler.
var operationRegistry = map[string]*domain.OperationSpec{
	"compresspdf": {
		Name:            "compresspdf",
		Endpoint:        "/v1/pdf/optimize",
		Required:        []string{"url"},
		Mode:            domain.ResultModeURL,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No compressed file was generated",
	},
	"mergepdf": {
		Name:            "mergepdf",
		Endpoint:        "/v1/pdf/merge",
		Required:        []string{"url"},
		Mode:            domain.ResultModeURL,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No merged file was generated",
	},
	"splitpdf": {
		Name:            "splitpdf",
		Endpoint:        "/v1/pdf/split",
		Required:        []string{"url", "pages"},
		Mode:            domain.ResultModeURLs,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No split files were generated",
	},
	"splitbytext": {
		Name:     "splitbytext",
		Endpoint: "/v1/pdf/split2",
		Required: []string{"url", "searchString"},
		Defaults: map[string]interface{}{
			"excludeText": false,
			"regexSearch": false,
		},
		Mode:            domain.ResultModeURLsOrNotFound,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No split files were generated",
	},
	"rotatepdf": {
		Name:            "rotatepdf",
		Endpoint:        "/v1/pdf/edit/rotate",
		Required:        []string{"url", "angle"},
		Mode:            domain.ResultModeURL,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No rotated file was generated",
	},
	"addpassword": {
		Name:     "addpassword",
		Endpoint: "/v1/pdf/security/add",
		Required: []string{"url", "ownerPassword"},
		Defaults: map[string]interface{}{
			"encryptionAlgorithm":    defaultEncryptionAlgorithm,
			"allowPrintDocument":     true,
			"allowContentExtraction": false,
			"allowModifyDocument":    false,
			"printQuality":           defaultPrintQuality,
		},
		Mode:            domain.ResultModeURL,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No protected file was generated",
	},
	"removepassword": {
		Name:            "removepassword",
		Endpoint:        "/v1/pdf/security/remove",
		Required:        []string{"url", "password"},
		Mode:            domain.ResultModeURL,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No unlocked file was generated",
	},
	"searchreplacetext": {
		Name:     "searchreplacetext",
		Endpoint: "/v1/pdf/edit/replace-text",
		Required: []string{"url", "searchString", "replaceString"},
		Defaults: map[string]interface{}{
			"caseSensitive": false,
		},
		Mode:            domain.ResultModeURL,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No edited file was generated",
	},
	"searchdeletetext": {
		Name:     "searchdeletetext",
		Endpoint: "/v1/pdf/edit/delete-text",
		Required: []string{"url", "searchString"},
		Defaults: map[string]interface{}{
			"caseSensitive": false,
		},
		Mode:            domain.ResultModeURL,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No edited file was generated",
	},
	"addtextwatermark": {
		Name:            "addtextwatermark",
		Endpoint:        "/v1/pdf/edit/add",
		Required:        []string{"url", "text"},
		Mode:            domain.ResultModeURL,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No watermarked file was generated",
	},
	"addimagewatermark": {
		Name:            "addimagewatermark",
		Endpoint:        "/v1/pdf/edit/add",
		Required:        []string{"url", "imageUrl"},
		Mode:            domain.ResultModeURL,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No watermarked file was generated",
	},
	"deletepages": {
		Name:            "deletepages",
		Endpoint:        "/v1/pdf/edit/delete-pages",
		Required:        []string{"url", "pages"},
		Mode:            domain.ResultModeURL,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No edited file was generated",
	},
	"extractpages": {
		Name:            "extractpages",
		Endpoint:        "/v1/pdf/split",
		Required:        []string{"url", "pages"},
		Mode:            domain.ResultModeURLs,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No extracted pages were generated",
	},
	"pdfinfo": {
		Name:            "pdfinfo",
		Endpoint:        "/v1/pdf/info",
		Required:        []string{"url"},
		Mode:            domain.ResultModeBody,
		FallbackMessage: "No document info was returned",
	},
	"pdftojpg": {
		Name:            "pdftojpg",
		Endpoint:        "/v1/pdf/convert/to/jpg",
		Required:        []string{"url"},
		Mode:            domain.ResultModeURLs,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No images were generated",
	},
	"pdftopng": {
		Name:            "pdftopng",
		Endpoint:        "/v1/pdf/convert/to/png",
		Required:        []string{"url"},
		Mode:            domain.ResultModeURLs,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No images were generated",
	},
	"pdftotiff": {
		Name:            "pdftotiff",
		Endpoint:        "/v1/pdf/convert/to/tiff",
		Required:        []string{"url"},
		Mode:            domain.ResultModeURLs,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No images were generated",
	},
	"pdftotext": {
		Name:            "pdftotext",
		Endpoint:        "/v1/pdf/convert/to/text",
		Required:        []string{"url"},
		Mode:            domain.ResultModeURL,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No text file was generated",
	},
	"pdftohtml": {
		Name:            "pdftohtml",
		Endpoint:        "/v1/pdf/convert/to/html",
		Required:        []string{"url"},
		Mode:            domain.ResultModeURL,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No HTML file was generated",
	},
	"pdftocsv": {
		Name:            "pdftocsv",
		Endpoint:        "/v1/pdf/convert/to/csv",
		Required:        []string{"url"},
		Mode:            domain.ResultModeURL,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No CSV file was generated",
	},
	"pdftoxml": {
		Name:            "pdftoxml",
		Endpoint:        "/v1/pdf/convert/to/xml",
		Required:        []string{"url"},
		Mode:            domain.ResultModeURL,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No XML file was generated",
	},
	"pdftoxlsx": {
		Name:            "pdftoxlsx",
		Endpoint:        "/v1/pdf/convert/to/xlsx",
		Required:        []string{"url"},
		Mode:            domain.ResultModeURL,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No spreadsheet was generated",
	},
	"pdftojson": {
		Name:            "pdftojson",
		Endpoint:        "/v1/pdf/convert/to/json",
		Required:        []string{"url"},
		Mode:            domain.ResultModeURL,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No JSON file was generated",
	},
	"doctopdf": {
		Name:            "doctopdf",
		Endpoint:        "/v1/pdf/convert/from/doc",
		Required:        []string{"url"},
		Mode:            domain.ResultModeURL,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No PDF was generated",
	},
	"xlstopdf": {
		Name:            "xlstopdf",
		Endpoint:        "/v1/xls/convert/to/pdf",
		Required:        []string{"url"},
		Mode:            domain.ResultModeURL,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No PDF was generated",
	},
	"csvtopdf": {
		Name:     "csvtopdf",
		Endpoint: "/v1/csv/convert/to/pdf",
		Required: []string{"url"},
		Defaults: map[string]interface{}{
			"paperSize": defaultPaperSize,
		},
		Mode:            domain.ResultModeURL,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No PDF was generated",
	},
	"imagetopdf": {
		Name:            "imagetopdf",
		Endpoint:        "/v1/pdf/convert/from/image",
		Required:        []string{"url"},
		Mode:            domain.ResultModeURL,
		CleanupFields:   []string{"url"},
		FallbackMessage: "No PDF was generated",
	},
	"htmltopdf": {
		Name:     "htmltopdf",
		Endpoint: "/v1/pdf/convert/from/html",
		Required: []string{"html"},
		Defaults: map[string]interface{}{
			"paperSize":       defaultPaperSize,
			"orientation":     "Portrait",
			"printBackground": true,
		},
		Mode:            domain.ResultModeURL,
		FallbackMessage: "No PDF was generated",
	},
	"urltopdf": {
		Name:     "urltopdf",
		Endpoint: "/v1/pdf/convert/from/url",
		Required: []string{"url"},
		Defaults: map[string]interface{}{
			"paperSize":       defaultPaperSize,
			"orientation":     "Portrait",
			"printBackground": true,
		},
		Mode: domain.ResultModeURL,
		// The source is a live web page, not an uploaded file.
		FallbackMessage: "No PDF was generated",
	},
	"barcodegenerate": {
		Name:     "barcodegenerate",
		Endpoint: "/v1/barcode/generate",
		Required: []string{"value"},
		Defaults: map[string]interface{}{
			"type":   "Code128",
			"inline": false,
		},
		Mode:            domain.ResultModeURL,
		FallbackMessage: "No barcode was generated",
	},
	"qrcodegenerate": {
		Name:     "qrcodegenerate",
		Endpoint: "/v1/barcode/generate",
		Required: []string{"value"},
		Defaults: map[string]interface{}{
			"type":   "QRCode",
			"inline": false,
		},
		Mode:            domain.ResultModeURL,
		FallbackMessage: "No QR code was generated",
	},
}

// Vendor job endpoints for the asynchronous invoice parser flow.
const (
	invoiceParserEndpoint = "/v1/ai-invoice-parser"
	jobCheckEndpoint      = "/v1/job/check"
)

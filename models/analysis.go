package models

// DocumentType identifies the kind of legal document that was analyzed
type DocumentType string

const (
	DocumentTypeEmployment  DocumentType = "employment contract"
	DocumentTypeLease       DocumentType = "lease agreement"
	DocumentTypePurchase    DocumentType = "purchase agreement"
	DocumentTypeNDA         DocumentType = "non-disclosure agreement"
	DocumentTypeService     DocumentType = "service agreement"
	DocumentTypePartnership DocumentType = "partnership agreement"
	DocumentTypeGeneric     DocumentType = "legal document"
)

// AnalyzedClause is a single clause with its plain-language rendering
type AnalyzedClause struct {
	Title       string `json:"title"`
	Original    string `json:"original"`
	Simplified  string `json:"simplified"`
	Explanation string `json:"explanation"`
}

// DocumentAnalysis is the structured result of analyzing one document
type DocumentAnalysis struct {
	Summary      string           `json:"summary"`
	Clauses      []AnalyzedClause `json:"clauses"`
	DocumentType DocumentType     `json:"document_type"`
	KeyPoints    []string         `json:"key_points"`
}

package service

import "legalzen-backend/models"

const (
	demoFilename     = "demo_contract.txt"
	demoDocumentText = "Demo employment contract with standard terms and conditions..."
	sampleFilename   = "sample_contract.txt"
)

// sampleAgreement is analyzed on every /sample request
const sampleAgreement = `
    EMPLOYMENT AGREEMENT
    
    This Employment Agreement is entered into between XYZ Corporation (the "Company") and John Doe (the "Employee").
    
    1. POSITION AND DUTIES
    The Employee shall serve as Software Developer and shall perform such duties and responsibilities as may be assigned by the Company from time to time. Employee shall devote their full time and attention to the business of the Company.
    
    2. COMPENSATION
    The Company shall pay the Employee a base salary of Seventy-Five Thousand Dollars ($75,000) per annum, payable in equal monthly installments, subject to applicable withholdings and deductions as required by law.
    
    3. TERMINATION
    Either party may terminate this Agreement at any time, with or without cause, upon thirty (30) days written notice to the other party.
    
    4. CONFIDENTIALITY
    Employee acknowledges that during employment, Employee may have access to confidential information and trade secrets of the Company. Employee agrees not to disclose such information to any third party.
    `

// demoAnalysis is a hand-written result for exercising clients without an upload
func demoAnalysis() *models.DocumentAnalysis {
	return &models.DocumentAnalysis{
		Summary: "This employment contract outlines comprehensive terms of employment including salary structure, " +
			"benefits package, termination procedures, and confidentiality obligations. The document establishes " +
			"a 6-month probationary period, competitive health benefits, and includes standard non-compete " +
			"restrictions valid for 12 months post-employment.",
		Clauses: []models.AnalyzedClause{
			{
				Title: "📝 Employment Duties",
				Original: "The Employee shall perform such duties and responsibilities as may be assigned by the Company " +
					"from time to time, and shall devote their full time and attention to the business of the Company " +
					"during regular business hours.",
				Simplified: "You must focus entirely on your work duties during business hours and can't work for other " +
					"companies during employment.",
				Explanation: "This is a standard exclusivity clause that ensures you dedicate your working time to this " +
					"company and prevents conflicts of interest with other employers.",
			},
			{
				Title: "💰 Compensation Package",
				Original: "The Company shall pay the Employee a base salary of Sixty Thousand Dollars ($60,000) per annum, " +
					"payable in equal monthly installments, subject to applicable withholdings and deductions as required by law.",
				Simplified: "You'll receive $60,000 per year, paid monthly ($5,000/month), with normal taxes taken out.",
				Explanation: "Your annual salary is divided into 12 equal monthly payments with standard tax deductions and " +
					"withholdings applied according to federal and state requirements.",
			},
			{
				Title: "📋 Termination Procedures",
				Original: "Either party may terminate this Agreement at any time, with or without cause, upon thirty (30) " +
					"days written notice to the other party, except that the Company may terminate Employee immediately for cause.",
				Simplified: "Either you or the company can end this contract with 30 days written notice, but the company " +
					"can fire you immediately for serious misconduct.",
				Explanation: "This establishes termination procedures with standard notice periods, while allowing immediate " +
					"termination for serious violations like theft, harassment, or policy breaches.",
			},
			{
				Title: "🔒 Confidentiality Agreement",
				Original: "Employee acknowledges that during employment, Employee may have access to confidential information " +
					"and trade secrets. Employee agrees not to disclose such information to any third party.",
				Simplified: "You must keep all company secrets private and not share sensitive information with anyone " +
					"outside the company.",
				Explanation: "This protects the company's proprietary information, client data, and business strategies from " +
					"being shared with competitors or unauthorized parties.",
			},
		},
		DocumentType: models.DocumentTypeEmployment,
		KeyPoints: []string{
			"Full-time employment with exclusivity requirements",
			"Annual salary of $60,000 paid monthly",
			"30-day notice period for standard termination",
			"Immediate termination allowed for misconduct",
			"Comprehensive confidentiality obligations",
			"Standard benefits package included",
		},
	}
}

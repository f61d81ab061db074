// server/internal/models/provider.go
package models

type Provider struct {
	ID        int64  `bson:"_id" json:"id"`
	LegalName string `bson:"legalName" json:"legalName"`
	TradeName string `bson:"tradeName" json:"tradeName"`
	TaxID     string `bson:"taxId" json:"taxId"` // RUT, stored without dots or dash
	Contact   string `bson:"contact" json:"contact"`
	Phone     string `bson:"phone" json:"phone"`
	Email     string `bson:"email" json:"email"`
	Line      string `bson:"line" json:"line"` // line of business
}

type ProviderPatch struct {
	LegalName *string `json:"legalName"`
	TradeName *string `json:"tradeName"`
	TaxID     *string `json:"taxId"`
	Contact   *string `json:"contact"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Line      *string `json:"line"`
}

func (p ProviderPatch) Apply(pr *Provider) {
	setString(&pr.LegalName, p.LegalName)
	setString(&pr.TradeName, p.TradeName)
	setString(&pr.TaxID, p.TaxID)
	setString(&pr.Contact, p.Contact)
	setString(&pr.Phone, p.Phone)
	setString(&pr.Email, p.Email)
	setString(&pr.Line, p.Line)
}

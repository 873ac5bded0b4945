package export

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
)

// XMLDocument documento canónico listo para servir.
// ETag es el SHA-256 (hex) del cuerpo: mismos pedidos, mismo ETag.
type XMLDocument struct {
	Body []byte
	ETag string
}

// OrdersXML construye <orders> con un <order> por pedido y lo canonicaliza (C14N).
// El documento no lleva marcas de tiempo de generación.
func OrdersXML(orders []*entity.Order) (*XMLDocument, error) {
	doc := etree.NewDocument()
	root := doc.CreateElement("orders")
	root.CreateAttr("count", strconv.Itoa(len(orders)))

	for _, o := range orders {
		el := root.CreateElement("order")
		el.CreateAttr("id", o.ID)
		el.CreateAttr("status", string(o.Status))
		el.CreateAttr("createdAt", o.CreatedAt.UTC().Format(time.RFC3339))

		cust := el.CreateElement("customer")
		cust.CreateAttr("id", o.Customer.ID)
		cust.CreateElement("name").SetText(o.Customer.Name)
		cust.CreateElement("email").SetText(o.Customer.Email)
		cust.CreateElement("phone").SetText(o.Customer.Phone)

		items := el.CreateElement("items")
		for _, it := range o.Items {
			item := items.CreateElement("item")
			item.CreateAttr("productId", it.ProductID)
			item.CreateAttr("quantity", strconv.Itoa(it.Quantity))
			item.CreateElement("name").SetText(it.Name)
			item.CreateElement("price").SetText(it.Price.StringFixed(2))
			item.CreateElement("subtotal").SetText(it.Subtotal().StringFixed(2))
		}
		el.CreateElement("total").SetText(o.Total.StringFixed(2))
	}

	raw, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("export: serializar xml: %w", err)
	}
	canonical, err := canonicalizeXML(raw)
	if err != nil {
		return nil, fmt.Errorf("export: canonicalizar xml: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return &XMLDocument{Body: canonical, ETag: `"` + hex.EncodeToString(sum[:]) + `"`}, nil
}

func canonicalizeXML(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}

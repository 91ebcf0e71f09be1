package output

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/beevik/etree"
)

// Namespace is the XML namespace of rrule2text documents.
const Namespace = "urn:rrule2text:descriptions"

// XML element and attribute names
const (
	TagDescriptions = "descriptions"
	TagDescription  = "description"
	TagRule         = "rule"
	TagText         = "text"
	TagError        = "error"
	TagOccurrence   = "occurrence"

	AttrUID         = "uid"
	AttrSummary     = "summary"
	AttrApproximate = "approximate"
)

// AddNamespace declares the rrule2text namespace on the document root
func AddNamespace(doc *etree.Document) {
	root := doc.Root()
	if root == nil {
		return
	}
	root.CreateAttr("xmlns", Namespace)
}

type xmlEncoder struct{}

func (xmlEncoder) Encode(w io.Writer, records []Record) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(TagDescriptions)
	AddNamespace(doc)

	for _, r := range records {
		elem := root.CreateElement(TagDescription)
		if r.UID != "" {
			elem.CreateAttr(AttrUID, r.UID)
		}
		if r.Summary != "" {
			elem.CreateAttr(AttrSummary, r.Summary)
		}
		if r.Approximate {
			elem.CreateAttr(AttrApproximate, "true")
		}

		elem.CreateElement(TagRule).SetText(r.Rule)
		if r.Error != "" {
			elem.CreateElement(TagError).SetText(r.Error)
		} else {
			elem.CreateElement(TagText).SetText(r.Text)
		}
		for _, t := range r.Next {
			elem.CreateElement(TagOccurrence).SetText(t.Format(time.RFC3339))
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

// DecodeXML parses a document written by the XML encoder.
func DecodeXML(r io.Reader) ([]Record, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty document")
	}
	if root.Tag != TagDescriptions {
		return nil, fmt.Errorf("invalid root tag: %s", root.Tag)
	}

	var records []Record
	for _, elem := range root.SelectElements(TagDescription) {
		rec := Record{
			UID:     elem.SelectAttrValue(AttrUID, ""),
			Summary: elem.SelectAttrValue(AttrSummary, ""),
		}
		if v := elem.SelectAttrValue(AttrApproximate, ""); v != "" {
			approximate, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("invalid %s attribute: %w", AttrApproximate, err)
			}
			rec.Approximate = approximate
		}

		if e := elem.SelectElement(TagRule); e != nil {
			rec.Rule = e.Text()
		}
		if e := elem.SelectElement(TagText); e != nil {
			rec.Text = e.Text()
		}
		if e := elem.SelectElement(TagError); e != nil {
			rec.Error = e.Text()
		}
		for _, e := range elem.SelectElements(TagOccurrence) {
			t, err := time.Parse(time.RFC3339, e.Text())
			if err != nil {
				return nil, fmt.Errorf("invalid occurrence %q: %w", e.Text(), err)
			}
			rec.Next = append(rec.Next, t)
		}

		records = append(records, rec)
	}
	return records, nil
}

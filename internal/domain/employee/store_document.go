package employee

import (
	"context"
)

func (s *Store) CreateDocument(ctx context.Context, in CreateDocumentInput) (Document, error) {
	var d Document
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employee_documents (employee_id, document_name, document_type, file_url)
    VALUES ($1, $2, $3, $4)
    RETURNING id, employee_id, document_name, document_type, file_url, created_at
  `, in.EmployeeID, in.DocumentName, in.DocumentType, in.FileURL).Scan(&d.ID, &d.EmployeeID, &d.DocumentName, &d.DocumentType, &d.FileURL, &d.CreatedAt)
	return d, err
}

func (s *Store) ListDocuments(ctx context.Context, employeeID string) ([]Document, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, document_name, document_type, file_url, created_at
    FROM employee_documents
    WHERE employee_id = $1
    ORDER BY created_at DESC, id DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Document{}
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.EmployeeID, &d.DocumentName, &d.DocumentType, &d.FileURL, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) DeleteDocument(ctx context.Context, id int64) (bool, error) {
	tag, err := s.DB.Exec(ctx, `DELETE FROM employee_documents WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

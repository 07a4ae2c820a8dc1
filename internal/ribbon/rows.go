package ribbon

// RowCapacity is the number of compact buttons per ribbon row.
const RowCapacity = 3

// PackRows lays compact buttons out in rows of RowCapacity, keeping their
// order. The result is one RibbonRowPanel owning every row; only the last row
// may be short. No buttons means no row panel, and ok is false.
func PackRows(buttons []Element) (rowPanel Element, ok bool) {
	if len(buttons) == 0 {
		return Element{}, false
	}

	rowPanel = NewElement(ElemRowPanel)

	var row *Element
	for _, button := range buttons {
		if row == nil || len(row.Children) == RowCapacity {
			rowPanel.Add(NewElement(ElemRow))
			row = &rowPanel.Children[len(rowPanel.Children)-1]
		}
		row.Add(button)
	}

	return rowPanel, true
}

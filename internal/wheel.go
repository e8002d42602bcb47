package internal

// Wheel is the fixed segment catalog. Order matters: spinResult broadcasts the
// drawn index so clients can animate to the matching slot.
var Wheel = []WheelSegment{
	{Type: SegmentMoney, Value: 500, Label: "$500"},
	{Type: SegmentMoney, Value: 550, Label: "$550"},
	{Type: SegmentMoney, Value: 600, Label: "$600"},
	{Type: SegmentBankrupt, Value: 0, Label: "BANKRUPT"},
	{Type: SegmentMoney, Value: 650, Label: "$650"},
	{Type: SegmentMoney, Value: 700, Label: "$700"},
	{Type: SegmentMoney, Value: 300, Label: "$300"},
	{Type: SegmentMoney, Value: 800, Label: "$800"},
	{Type: SegmentLoseTurn, Value: 0, Label: "LOSE A TURN"},
	{Type: SegmentMoney, Value: 450, Label: "$450"},
	{Type: SegmentMoney, Value: 900, Label: "$900"},
	{Type: SegmentMoney, Value: 350, Label: "$350"},
	{Type: SegmentMoney, Value: 400, Label: "$400"},
	{Type: SegmentMoney, Value: 250, Label: "$250"},
}

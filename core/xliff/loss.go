package xliff

// LossClass represents the fidelity level of a dialect conversion.
type LossClass string

// Loss class constants, from most to least fidelity.
const (
	// LossL0 indicates lossless conversion - everything in the model is written.
	LossL0 LossClass = "L0"

	// LossL1 indicates metadata loss - file attributes or ids dropped, all text kept.
	LossL1 LossClass = "L1"

	// LossL2 indicates semantic loss - translation states or language pairs merged.
	LossL2 LossClass = "L2"
)

// Level returns the numeric level (0-2) of the loss class.
func (l LossClass) Level() int {
	switch l {
	case LossL0:
		return 0
	case LossL1:
		return 1
	case LossL2:
		return 2
	default:
		return -1
	}
}

// IsLossless returns true if this loss class indicates no data loss.
func (l LossClass) IsLossless() bool {
	return l == LossL0
}

// LostElement describes a specific piece of data that was lost during conversion.
type LostElement struct {
	// Path is the location in the model (e.g., "files[0].units[3].state").
	Path string `json:"path" yaml:"path"`

	// ElementType describes what was lost (e.g., "state", "datatype").
	ElementType string `json:"element_type" yaml:"element_type"`

	// Reason explains why the element was lost.
	Reason string `json:"reason" yaml:"reason"`

	// OriginalValue is the value that was lost.
	OriginalValue string `json:"original_value,omitempty" yaml:"original_value,omitempty"`
}

// LossReport documents the fidelity of a conversion.
type LossReport struct {
	SourceVersion Version   `json:"source_version" yaml:"source_version"`
	TargetVersion Version   `json:"target_version" yaml:"target_version"`
	LossClass     LossClass `json:"loss_class" yaml:"loss_class"`

	// LostElements lists specific pieces of data that were lost.
	LostElements []LostElement `json:"lost_elements,omitempty" yaml:"lost_elements,omitempty"`
}

// HasLoss returns true if any elements were lost.
func (r *LossReport) HasLoss() bool {
	return len(r.LostElements) > 0 || r.LossClass.Level() > 0
}

// addLoss records a lost element and raises the loss class to at least class.
func (r *LossReport) addLoss(class LossClass, path, elementType, reason, value string) {
	r.LostElements = append(r.LostElements, LostElement{
		Path:          path,
		ElementType:   elementType,
		Reason:        reason,
		OriginalValue: value,
	})
	if class.Level() > r.LossClass.Level() {
		r.LossClass = class
	}
}

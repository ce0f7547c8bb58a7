package rubiks

import "fmt"

// maxResetSteps bounds ResetPerspective. Five steps reach the reference
// orientation from any of the 24 orientations.
const maxResetSteps = 8

// InReferenceOrientation reports whether blue is in front, white on top and
// red on the left.
func (c *Cube) InReferenceOrientation() bool {
	return c.roleOf(Blue) == RoleFront &&
		c.roleOf(White) == RoleTop &&
		c.roleOf(Red) == RoleLeft
}

// ResetPerspective turns the whole cube back to the reference orientation
// one corrective rotation at a time and returns how many were needed. The
// rotations go through the stack like any other.
func (c *Cube) ResetPerspective() (int, error) {
	steps := 0
	for !c.InReferenceOrientation() {
		if steps == maxResetSteps {
			return steps, fmt.Errorf("%w: orientation did not settle after %d steps", ErrIntegrity, steps)
		}
		if err := c.Apply(c.correctiveStep()); err != nil {
			return steps, err
		}
		steps++
	}
	return steps, nil
}

// correctiveStep picks the next rotation, keyed on where blue is.
func (c *Cube) correctiveStep() Operation {
	switch c.roleOf(Blue) {
	case RoleTop:
		return RotateDown
	case RoleBottom:
		return RotateUp
	case RoleBack:
		if c.roleOf(White) == RoleTop {
			return InvertVertical
		}
		return RotateUp
	case RoleLeft:
		return RotateRightVertical
	case RoleRight:
		return RotateLeftVertical
	default:
		return RotateLeftHorizontal
	}
}

func (c *Cube) roleOf(col Color) Role {
	return c.faces[faceOf(col)].role
}

package plotpy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextDraw(t *testing.T) {
	tx := NewText()
	tx.Color = "#cd0000"
	tx.AlignH = "center"
	tx.AlignV = "bottom"
	tx.Rotation = 45
	tx.FontSize = 16
	tx.Draw(1.2, 3.4, "hello")
	assert.Equal(t,
		"tx=plt.text(1.2,3.4,r'hello',color='#cd0000',ha='center',va='bottom',rotation=45,fontsize=16)\nadd_to_ea(tx)\n",
		tx.Buffer())
}

func TestTextDraw3(t *testing.T) {
	tx := NewText()
	tx.Draw3(0, -1, 2.5, "top")
	assert.Equal(t, "tx=ax3d().text(0,-1,2.5,r'top')\nadd_to_ea(tx)\n", tx.Buffer())
}

func TestTextEscapesQuotes(t *testing.T) {
	tx := NewText()
	tx.Draw(0, 0, "it's")
	assert.Contains(t, tx.Buffer(), `r'it\'s'`)
}

func TestTextExtra(t *testing.T) {
	tx := NewText()
	tx.Extra = "zorder=10"
	tx.Draw(0, 0, "z")
	assert.Contains(t, tx.Buffer(), "r'z',zorder=10)")
}

// constants.go

package plotpy

// numericMarkers are Matplotlib marker styles that are python numbers
// rather than strings, so they must not be quoted.
//
// See: https://matplotlib.org/stable/api/markers_api.html
var numericMarkers = map[string]bool{
	"0": true, "1": true, "2": true, "3": true, "4": true, "5": true,
	"6": true, "7": true, "8": true, "9": true, "10": true, "11": true,
}

// quoteMarker quotes a marker style unless it is one of the numeric
// Matplotlib markers.
func quoteMarker(style string) string {
	if numericMarkers[style] {
		return style
	}
	return "'" + pyEscape(style) + "'"
}

// pythonHeader is prepended to every generated script. It defines:
//
//   - NaN -- variable mapping the NaN float value
//   - EXTRA_ARTISTS / add_to_ea -- objects that savefig must not ignore
//     when computing bounding boxes (e.g. an outside legend)
//   - THREE_D / THREE_D_ACTIVE / ax3d / subplot3d -- lazy mplot3d axes,
//     one per 3D subplot
//   - set_equal_axes -- same data-to-plot scaling on all axes; handles
//     the 3D case (needs Matplotlib >= 3.3)
//   - set_axis_label -- axis label along dimension 'dim'
//   - get_colormap -- colormap from an index into a fixed table
const pythonHeader = `### file generated by the 'plotpy' Go module

import numpy as np
import matplotlib.pyplot as plt
import matplotlib.ticker as tck
import matplotlib.patches as pat
import matplotlib.path as pth
import matplotlib.patheffects as pff
import matplotlib.lines as lns
import matplotlib.transforms as tra
import mpl_toolkits.mplot3d

# Variable to handle NaN values coming from Go
NaN = np.nan

# List of additional objects to calculate bounding boxes
EXTRA_ARTISTS = []

# Adds an entity to the EXTRA_ARTISTS list to calculate bounding boxes
def add_to_ea(obj):
    if obj!=None: EXTRA_ARTISTS.append(obj)

# Is a dictionary of mplot3d objects (one for each subplot3d)
THREE_D = dict()

# Is a tuple holding the key to the current THREE_D object (defines the subplot3d)
THREE_D_ACTIVE = (1,1,1)

# Creates or returns the mplot3d object with the current subplot3d definition
def ax3d():
    global THREE_D
    global THREE_D_ACTIVE
    if not THREE_D_ACTIVE in THREE_D:
        a, b, c = THREE_D_ACTIVE
        THREE_D[THREE_D_ACTIVE] = plt.gcf().add_subplot(a,b,c,projection='3d')
        THREE_D[THREE_D_ACTIVE].set_xlabel('x')
        THREE_D[THREE_D_ACTIVE].set_ylabel('y')
        THREE_D[THREE_D_ACTIVE].set_zlabel('z')
        add_to_ea(THREE_D[THREE_D_ACTIVE])
    return THREE_D[THREE_D_ACTIVE]

# Specifies the THREE_D_ACTIVE parameters to define a subplot3d
def subplot3d(a,b,c):
    global THREE_D_ACTIVE
    THREE_D_ACTIVE = (a,b,c)
    ax3d()

# Configures the aspect of axes with the same scaling from data to plot units
def set_equal_axes():
    global THREE_D
    if len(THREE_D) == 0:
        plt.gca().axes.set_aspect('equal')
        return
    try:
        ax = ax3d()
        ax.set_box_aspect([1,1,1])
        limits = np.array([ax.get_xlim3d(), ax.get_ylim3d(), ax.get_zlim3d()])
        origin = np.mean(limits, axis=1)
        radius = 0.5 * np.max(np.abs(limits[:, 1] - limits[:, 0]))
        x, y, z = origin
        ax.set_xlim3d([x - radius, x + radius])
        ax.set_ylim3d([y - radius, y + radius])
        ax.set_zlim3d([z - radius, z + radius])
    except:
        import matplotlib
        print('VERSION of MATPLOTLIB = {}'.format(matplotlib.__version__))
        print('ERROR: set_box_aspect is missing in this version of Matplotlib')

# Sets the label of the axis along the dimension 'dim'
def set_axis_label(dim, label):
    global THREE_D
    if len(THREE_D) == 0:
        if dim == 1: plt.gca().set_xlabel(label)
        if dim == 2: plt.gca().set_ylabel(label)
    else:
        if dim == 1: ax3d().set_xlabel(label)
        if dim == 2: ax3d().set_ylabel(label)
        if dim == 3: ax3d().set_zlabel(label)

# Returns a colormap from an index into a fixed table
def get_colormap(idx):
    cmaps = ['bwr','RdBu','hsv','jet','terrain','pink','Greys','coolwarm']
    return plt.get_cmap(cmaps[idx % len(cmaps)])

################## plotting commands follow after this line ############################

`
